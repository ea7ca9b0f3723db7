package logfile

import (
	"errors"
	"fmt"
)

var (
	//ErrIncomplete is wrapped by the error returned when a non-empty document
	//has neither energy, forces nor walltime, and none of the known benign
	//warnings explains it.
	ErrIncomplete = errors.New("The logfile is incomplete!")
	//ErrNoDocument is returned when a stream contains no document at all.
	ErrNoDocument = errors.New("no document found in logfile")
)

//Error is the error type returned by the package. It keeps the file and the
//document (within a multi-document logfile) the error comes from.
type Error struct {
	message  string
	filename string
	document int //-1 when unknown
	deco     []string
	critical bool
	err      error
}

func (err Error) Error() string {
	where := "logfile"
	if err.filename != "" {
		where += " " + err.filename
	}
	if err.document >= 0 {
		where += fmt.Sprintf(" (document %d)", err.document)
	}
	return fmt.Sprintf("%s error: %s", where, err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

//Document returns the index of the document the error comes from, or -1.
func (err Error) Document() int { return err.document }

func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.err }

//newError wraps err, which may be one of the package's sentinels.
func newError(err error, caller string) Error {
	return Error{err.Error(), "", -1, []string{caller}, true, err}
}

//locate sets the document index and file name of err, if it is an Error.
func locate(err error, filename string, document int, caller string) error {
	var e Error
	if !errors.As(err, &e) {
		e = newError(err, caller)
	} else {
		e.deco = append(e.deco, caller)
	}
	if filename != "" {
		e.filename = filename
	}
	if document >= 0 {
		e.document = document
	}
	return e
}
