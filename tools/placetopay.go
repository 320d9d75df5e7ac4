package tools

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// PlaceToPayAuth é o bloco "auth" exigido pelo Web Checkout da PlaceToPay.
// O tranKey enviado nunca é o secreto: é base64(sha256(nonce + seed + secreto)).
type PlaceToPayAuth struct {
	Login   string `json:"login"`
	TranKey string `json:"tranKey"`
	Nonce   string `json:"nonce"`
	Seed    string `json:"seed"`
}

// NewPlaceToPayAuth generates a fresh auth block with a random 16-byte nonce
// and the current time as seed.
func NewPlaceToPayAuth(login, tranKey string) (PlaceToPayAuth, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return PlaceToPayAuth{}, err
	}
	return buildPlaceToPayAuth(login, tranKey, nonce, time.Now().UTC()), nil
}

// buildPlaceToPayAuth é o núcleo determinístico (nonce e seed injetados),
// separado para permitir testes com vetores fixos.
//
// O seed precisa estar em ISO-8601 SEM milissegundos ("...T15:04:05Z");
// com milissegundos o gateway devolve erro 102.
func buildPlaceToPayAuth(login, tranKey string, nonce []byte, at time.Time) PlaceToPayAuth {
	seed := at.UTC().Format("2006-01-02T15:04:05Z")

	h := sha256.New()
	h.Write(nonce)
	h.Write([]byte(seed))
	h.Write([]byte(tranKey))

	return PlaceToPayAuth{
		Login:   login,
		TranKey: base64.StdEncoding.EncodeToString(h.Sum(nil)),
		Nonce:   base64.StdEncoding.EncodeToString(nonce),
		Seed:    seed,
	}
}
