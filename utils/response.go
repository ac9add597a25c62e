package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a uniform JSON error body.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

const randomAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns n random characters for human-facing
// reference numbers.
func GenerateRandomString(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomAlphabet))))
		if err != nil {
			out[i] = randomAlphabet[0]
			continue
		}
		out[i] = randomAlphabet[idx.Int64()]
	}
	return string(out)
}
