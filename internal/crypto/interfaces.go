package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// PayloadSealer protects buffered payloads at rest. The local database sits
// on removable terminal hardware, so record and photo payloads are sealed
// into opaque blobs before they touch disk; only the columns needed for
// indexed lookups stay in the clear.
//
// One sealing key is derived per database file:
//
//	key = Argon2id(sealSecret, dbSalt)
//
// where sealSecret comes from configuration and dbSalt is generated on
// first start and stored in the seal_meta table next to the data.
type PayloadSealer interface {
	// Seal serializes payload to JSON and encrypts it with the sealing key
	// via AES-256-GCM. Returns a base64-encoded blob (nonce || ciphertext)
	// safe to store in a TEXT column.
	Seal(payload any) (string, error)

	// Open decrypts a base64-encoded blob produced by Seal and unmarshals
	// the result into the target pointer (same as json.Unmarshal). Fails
	// if the blob was sealed under a different key or has been tampered
	// with (authentication-tag mismatch).
	Open(blob string, target any) error
}
