package testing

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"

	"github.com/dargueta/squash/archive"
)

// LoadArtifact takes a packed artifact container and returns a stream of
// the unpacked bytes.
//
//   - Writes to the stream do not affect `container`.
//   - While the stream can be written to, its size is fixed to
//     `expectedSize`. Attempting to write past the end triggers an error.
func LoadArtifact(t *testing.T, container []byte, expectedSize int) io.ReadWriteSeeker {
	require.Greater(t, len(container), 0, "packed artifact is empty")

	artifactBytes, err := archive.UnpackBytes(container)
	require.NoError(t, err)
	require.Equal(t, expectedSize, len(artifactBytes), "unpacked artifact is wrong size")

	return bytesextra.NewReadWriteSeeker(artifactBytes)
}

// PackArtifact is the inverse fixture helper: it packs raw artifact bytes
// into a container, failing the test on error.
func PackArtifact(t *testing.T, artifact []byte) []byte {
	container, err := archive.PackBytes(artifact)
	require.NoError(t, err)
	require.Greater(t, len(container), 0, "packed container is empty")
	return container
}

