package yamldoc

import "fmt"

//Error is the error type returned by this package. It carries the name of
//the file involved, if any, and the chain of functions it went through.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	err      error //the underlying error, if any
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("yaml document error: %s", err.message)
	}
	return fmt.Sprintf("yaml document %s error: %s", err.filename, err.message)
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

func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.err }
