package ninebox

import "errors"

// ErrNilStore is returned by Load and Save when given a nil store.
var ErrNilStore = errors.New("ninebox: preference store must not be nil")
