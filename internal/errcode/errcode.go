package errcode

// Error code conventions:
// - 0: no error
// - 4xxx: request errors the caller can correct (bad input, missing rows)
// - 5xxx: system errors (database, storage, mail)
const (
	OK              = 0
	InvalidInput    = 4000
	Unauthorized    = 4001
	ResourceMissing = 4004
	SystemError     = 5000
)
