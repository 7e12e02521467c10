package domain

// Envelope is the authenticated ciphertext bundle behind a placeholder.
//
// Wire layout: nonce (NonceSize bytes) || ciphertext || tag (TagSize bytes).
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// Bytes serializes the envelope in wire order.
func (e Envelope) Bytes() []byte {
	out := make([]byte, 0, len(e.Nonce)+len(e.Ciphertext)+len(e.Tag))
	out = append(out, e.Nonce...)
	out = append(out, e.Ciphertext...)
	return append(out, e.Tag...)
}

// Sealed returns ciphertext || tag, the form AEAD implementations open.
func (e Envelope) Sealed() []byte {
	out := make([]byte, 0, len(e.Ciphertext)+len(e.Tag))
	out = append(out, e.Ciphertext...)
	return append(out, e.Tag...)
}

// ParseEnvelope splits raw envelope bytes. The returned slices alias b.
func ParseEnvelope(b []byte) (Envelope, error) {
	if len(b) < NonceSize+TagSize {
		return Envelope{}, ErrMalformedEnvelope
	}
	return Envelope{
		Nonce:      b[:NonceSize],
		Ciphertext: b[NonceSize : len(b)-TagSize],
		Tag:        b[len(b)-TagSize:],
	}, nil
}

// EnvelopeFromSealed builds an envelope from a nonce and the ciphertext || tag
// output of an AEAD seal.
func EnvelopeFromSealed(nonce, sealed []byte) (Envelope, error) {
	if len(nonce) != NonceSize || len(sealed) < TagSize {
		return Envelope{}, ErrMalformedEnvelope
	}
	return Envelope{
		Nonce:      nonce,
		Ciphertext: sealed[:len(sealed)-TagSize],
		Tag:        sealed[len(sealed)-TagSize:],
	}, nil
}
