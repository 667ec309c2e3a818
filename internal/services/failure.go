package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason classifies why a board API call failed.
type Reason string

const (
	ReasonNetwork    Reason = "network"
	ReasonAuth       Reason = "auth"
	ReasonValidation Reason = "validation"
	ReasonNotFound   Reason = "not_found"
	ReasonUpstream   Reason = "upstream"
)

// Failure is the error returned by every BoardClient call.
type Failure struct {
	Op     string
	Reason Reason
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", f.Op, f.Reason, f.Status, f.Err)
	}
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Reason, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// ReasonOf returns the failure reason carried by err, or "" if err is not a Failure.
func ReasonOf(err error) Reason {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ""
}

// HTTPStatus maps a failure reason onto the status the page is served with.
func (r Reason) HTTPStatus() int {
	switch r {
	case ReasonAuth:
		return http.StatusUnauthorized
	case ReasonValidation:
		return http.StatusUnprocessableEntity
	case ReasonNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// Notice is the message shown to the user for a failed action.
func (r Reason) Notice() string {
	switch r {
	case ReasonNetwork:
		return "서버에 연결할 수 없습니다. 잠시 후 다시 시도해 주세요."
	case ReasonAuth:
		return "권한이 없습니다. 다시 로그인해 주세요."
	case ReasonValidation:
		return "입력 내용을 확인해 주세요."
	case ReasonNotFound:
		return "게시글을 찾을 수 없습니다."
	default:
		return "요청을 처리하지 못했습니다. 잠시 후 다시 시도해 주세요."
	}
}

func classifyStatus(code int) Reason {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ReasonAuth
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return ReasonValidation
	case code == http.StatusNotFound:
		return ReasonNotFound
	default:
		return ReasonUpstream
	}
}
