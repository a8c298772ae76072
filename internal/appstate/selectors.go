package appstate

import "newshub/internal/contract"

// Selectors are derived, read-only views over a state snapshot. They
// are plain functions so they compose with both Current() reads and
// Subscribe listeners.

func Logged(s State) bool {
	return s.Logged
}

func UserInfo(s State) contract.User {
	return s.User
}

func IsAdmin(s State) bool {
	return s.User.Type == contract.UserAdmin
}

func NotAdmin(s State) bool {
	return s.User.Type != contract.UserAdmin
}
