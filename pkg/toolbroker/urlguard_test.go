package toolbroker

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTargetURL(t *testing.T) {
	t.Run("schemes", func(t *testing.T) {
		assert.NoError(t, ValidateTargetURL("https://api.example.com/v1", nil, false))
		assert.ErrorContains(t, ValidateTargetURL("ftp://example.com/file", nil, false), "invalid scheme")
		assert.ErrorContains(t, ValidateTargetURL("file:///etc/passwd", nil, false), "invalid scheme")
	})

	t.Run("metadata endpoints are always blocked", func(t *testing.T) {
		assert.ErrorContains(t, ValidateTargetURL("http://169.254.169.254/latest/meta-data", nil, false), "blocked")
		assert.ErrorContains(t, ValidateTargetURL("http://metadata.google.internal/computeMetadata", nil, false), "blocked")
		// Blocklist applies even with allowPrivate.
		assert.ErrorContains(t, ValidateTargetURL("http://169.254.169.254/", nil, true), "blocked")
	})

	t.Run("forbidden IP literals", func(t *testing.T) {
		assert.ErrorContains(t, ValidateTargetURL("http://127.0.0.1:8080/x", nil, false), "forbidden range")
		assert.ErrorContains(t, ValidateTargetURL("http://10.0.0.5/x", nil, false), "forbidden range")
		assert.ErrorContains(t, ValidateTargetURL("http://192.168.1.1/x", nil, false), "forbidden range")
		assert.ErrorContains(t, ValidateTargetURL("http://0.0.0.0/x", nil, false), "forbidden range")
		assert.ErrorContains(t, ValidateTargetURL("http://localhost/x", nil, false), "loopback")
	})

	t.Run("public IP literal passes", func(t *testing.T) {
		assert.NoError(t, ValidateTargetURL("https://93.184.216.34/x", nil, false))
	})

	t.Run("allowed_hosts exact and subdomain matches", func(t *testing.T) {
		allowed := []string{"example.com"}
		assert.NoError(t, ValidateTargetURL("https://example.com/a", allowed, true))
		assert.NoError(t, ValidateTargetURL("https://api.example.com/a", allowed, true))
		assert.ErrorContains(t, ValidateTargetURL("https://evilexample.com/a", allowed, true), "not in allowed_hosts")
		assert.ErrorContains(t, ValidateTargetURL("https://other.org/a", allowed, true), "not in allowed_hosts")
	})

	t.Run("DNS resolving to private range is rejected", func(t *testing.T) {
		orig := lookupIP
		lookupIP = func(host string) ([]net.IP, error) {
			return []net.IP{net.ParseIP("10.1.2.3")}, nil
		}
		defer func() { lookupIP = orig }()

		err := ValidateTargetURL("https://rebind.example.com/x", nil, false)
		require.ErrorContains(t, err, "forbidden IP")
	})

	t.Run("allowPrivate skips range checks", func(t *testing.T) {
		assert.NoError(t, ValidateTargetURL("http://127.0.0.1:9999/x", nil, true))
		assert.NoError(t, ValidateTargetURL("http://10.0.0.5/x", nil, true))
	})
}
