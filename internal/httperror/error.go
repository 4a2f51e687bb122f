// Package httperror defines the body of all error responses.
package httperror

type Error struct {
	Message string `json:"error" example:"there is no category matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
