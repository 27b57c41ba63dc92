package chronia

import "errors"

// ErrUnknownLocale indicates a locale tag that no registered locale serves.
var ErrUnknownLocale = errors.New("chronia: unknown locale")

// ErrInvalidLocaleData indicates a locale definition whose name tables do
// not have the required shape.
var ErrInvalidLocaleData = errors.New("chronia: invalid locale data")
