package middleware

import (
	log "github.com/sirupsen/logrus"

	"github.com/whilp/neat/request"
	"github.com/whilp/neat/resource"
	"github.com/whilp/neat/response"
)

// Recovery converts handler panics into 500 responses. Dispatch itself
// never swallows panics; install Recovery when the hosting server should
// not see them.
func Recovery(next resource.Handler) resource.Handler {
	return func(r *request.Request) (resp response.Response) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Errorf("panic while handling %s %s: %v", r.Method(), r.Path(), rec)
				resp = response.NewErrorResponse(response.StatusInternalServerError)
			}
		}()
		return next(r)
	}
}
