package models

// Typed errors returned by the service layer. helper.GetStatusCode maps them
// to HTTP status codes by concrete type, so not-found and not-owner failures
// stay distinct all the way to the boundary.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
