package inputparams

import "fmt"

type Error struct {
	message  string
	deco     []string
	critical bool
	err      error
}

func (err Error) Error() string {
	return fmt.Sprintf("input parameters: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns false for errors after which the package could go on
//with a fallback, such as missing definitions.
func (err Error) Critical() bool { return err.critical }

func (err Error) Unwrap() error { return err.err }
