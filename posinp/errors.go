package posinp

import "errors"

type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return "posinp: " + err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) Critical() bool { return err.critical }

func decorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}
