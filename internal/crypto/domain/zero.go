package domain

// Zero overwrites key material once an operation no longer needs it.
func Zero(b []byte) {
	clear(b)
}
