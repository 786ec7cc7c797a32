package extract

import "errors"

// ErrUnsupportedMediaKind is returned when the uploaded file is none of the
// supported kinds (pdf, png, jpg, jpeg, text).
var ErrUnsupportedMediaKind = errors.New("unsupported media kind")
