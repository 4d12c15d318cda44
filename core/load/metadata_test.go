package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

const metadataFixture = `linux:
  - debian: Debian
  - ubuntu: Ubuntu
bsd:
  - freebsd: FreeBSD
customized:
  - armbian: Armbian
  - revyos: RevyOS
arches:
  - rv64: RV64
others:
  - haiku: Haiku
`

func TestSystemMetadata(t *testing.T) {
	src := contract.MapSource{contract.MetadataDocPath: []byte(metadataFixture)}

	meta, err := SystemMetadata(src)
	require.NoError(t, err)

	ids := make([]string, 0, len(meta.Categories))
	for _, cat := range meta.Categories {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []string{"linux", "bsd", "others"}, ids, "document order kept, customized merged, arches dropped")

	linux := meta.Categories[0]
	assert.Equal(t, []schema.SystemEntry{
		{ID: "debian", Name: "Debian"},
		{ID: "ubuntu", Name: "Ubuntu"},
		{ID: "armbian", Name: "Armbian"},
		{ID: "revyos", Name: "RevyOS"},
	}, linux.Systems, "customized entries are appended to linux")

	assert.Equal(t, "FreeBSD", meta.Names["freebsd"])
	assert.Equal(t, "RevyOS", meta.Names["revyos"])
	_, hasArch := meta.Names["rv64"]
	assert.False(t, hasArch)
}

func TestSystemMetadataCustomizedWithoutLinux(t *testing.T) {
	src := contract.MapSource{contract.MetadataDocPath: []byte("customized:\n  - armbian: Armbian\n")}

	meta, err := SystemMetadata(src)
	require.NoError(t, err)
	require.Len(t, meta.Categories, 1)
	assert.Equal(t, schema.LinuxCategory, meta.Categories[0].ID, "customized creates linux when absent")
}

func TestSystemMetadataErrors(t *testing.T) {
	_, err := SystemMetadata(contract.MapSource{})
	assert.Error(t, err, "a missing metadata document fails the load")

	_, err = SystemMetadata(contract.MapSource{contract.MetadataDocPath: []byte("- just\n- a\n- list\n")})
	assert.Error(t, err, "a non-mapping document fails the load")
}

func TestDeviceVendors(t *testing.T) {
	src := contract.MapSource{
		"entities/device/sipeed.toml":  []byte(""),
		"entities/device/starfive.toml": []byte(""),
		"entities/other/nope.toml":     []byte(""),
	}

	devices, err := DeviceVendors(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"sipeed", "starfive"}, devices)

	devices, err = DeviceVendors(nil)
	require.NoError(t, err)
	assert.Empty(t, devices)
}
