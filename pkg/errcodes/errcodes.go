package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Conflict            failure.ErrorCode = "Conflict"

	InvalidBeerID    failure.ErrorCode = "InvalidBeerID"
	InvalidBeerStyle failure.ErrorCode = "InvalidBeerStyle"
	BeerNotFound     failure.ErrorCode = "BeerNotFound"
	VersionConflict  failure.ErrorCode = "VersionConflict"
)
