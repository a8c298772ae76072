package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newshub/internal/contract"
)

// envelopeServer serves canned envelopes keyed by "METHOD path" and
// records the requests it saw.
type envelopeServer struct {
	responses map[string]contract.ApiResponse
	requests  []string
	lastBody  []byte
}

func newEnvelopeServer(t *testing.T) (*envelopeServer, *httptest.Server) {
	t.Helper()

	es := &envelopeServer{responses: map[string]contract.ApiResponse{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		es.requests = append(es.requests, key)
		body, _ := io.ReadAll(r.Body)
		es.lastBody = body

		res, ok := es.responses[key]
		if !ok {
			res = contract.NotFound()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(res.Status)
		_ = json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(srv.Close)

	return es, srv
}

func TestNewsServiceSize(t *testing.T) {
	es, srv := newEnvelopeServer(t)
	es.responses["GET /api/news/size"] = contract.Success(17)

	svc := NewNewsService(NewClient(srv.URL, nil))
	res := svc.Size(context.Background())

	require.Equal(t, contract.StatusSuccess, res.Status)
	size, err := Result[int](res)
	require.NoError(t, err)
	assert.Equal(t, 17, size)
}

func TestNewsServiceCreateSendsEntityVerbatim(t *testing.T) {
	es, srv := newEnvelopeServer(t)
	es.responses["POST /api/news"] = contract.Success(nil)

	draft := contract.EmptyNews("n1", "u1")
	draft.Title = "First"
	draft.Date = "14/01/2024 12:00"

	svc := NewNewsService(NewClient(srv.URL, nil))
	res := svc.Create(context.Background(), draft)

	require.Equal(t, contract.StatusSuccess, res.Status)

	var sent contract.News
	require.NoError(t, json.Unmarshal(es.lastBody, &sent))
	assert.Equal(t, draft, sent, "client-assigned id and date must reach the wire unchanged")
}

func TestUsersServiceGetAndEdit(t *testing.T) {
	es, srv := newEnvelopeServer(t)
	user := contract.User{ID: "u3", Name: "dave", Type: contract.UserNormal}
	es.responses["GET /api/users/u3"] = contract.Success(user)
	es.responses["PUT /api/users/u3"] = contract.Success(nil)

	svc := NewUsersService(NewClient(srv.URL, nil))

	res := svc.Get(context.Background(), "u3")
	require.Equal(t, contract.StatusSuccess, res.Status)
	got, err := Result[contract.User](res)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	res = svc.Edit(context.Background(), user)
	assert.Equal(t, contract.StatusSuccess, res.Status)
	assert.Contains(t, es.requests, "PUT /api/users/u3")
}

func TestArtistsServiceTags(t *testing.T) {
	es, srv := newEnvelopeServer(t)
	tags := []contract.Tag{{ID: 1, Title: "rock"}, {ID: 2, Title: "jazz"}}
	es.responses["GET /api/artists/tags"] = contract.Success(tags)

	svc := NewArtistsService(NewClient(srv.URL, nil))
	res := svc.Tags(context.Background())

	got, err := Result[[]contract.Tag](res)
	require.NoError(t, err)
	assert.Equal(t, tags, got)
}

func TestBusinessFailurePassesThrough(t *testing.T) {
	es, srv := newEnvelopeServer(t)
	es.responses["GET /api/news/missing"] = contract.NotFound()

	svc := NewNewsService(NewClient(srv.URL, nil))
	res := svc.Get(context.Background(), "missing")

	assert.Equal(t, contract.StatusNotFound, res.Status)
	assert.Equal(t, "NOT FOUND", res.Msg)
}

func TestTransportFailureBecomesErrorEnvelope(t *testing.T) {
	// a server that is already gone
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	svc := NewUsersService(NewClient(url, nil))
	res := svc.Size(context.Background())

	assert.Equal(t, contract.StatusError, res.Status, "transport failure and business failure share the envelope")
}

func TestUndecodableResponseBecomesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	t.Cleanup(srv.Close)

	res := NewNewsService(NewClient(srv.URL, nil)).Size(context.Background())
	assert.Equal(t, contract.StatusError, res.Status)
}

func TestResultRejectsNonSuccess(t *testing.T) {
	_, err := Result[int](contract.NotFound())
	assert.Error(t, err)

	_, err = Result[int](contract.ApiResponse{Msg: "SUCCESS", Status: contract.StatusSuccess})
	assert.Error(t, err, "success without a result is not decodable")
}
