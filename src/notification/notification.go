package notification

import "fmt"

// ShowFatal reports an unrecoverable dialog failure to the user.
func ShowFatal(err error) {
	ShowBlockingError("Native dialog failed", fmt.Sprintf("%v\n\nThe dialog could not be shown.", err))
}
