package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/internal/contract"
	"github.com/panglars/VeRForTe/schema"
)

func TestOtherReports(t *testing.T) {
	src := contract.MapSource{
		"visionfive2/others.yml": []byte(`- sys: openbsd
  sys_ver: "7.5"
  status: cft
- sys: haiku
  status: CFH
  sys_var: nightly
- status: good
`),
		"mars/others.yml": []byte("not: a sequence\n"),
	}

	reports, err := OtherReports(src)
	require.NoError(t, err)
	require.Len(t, reports, 2, "items without sys and non-sequence documents are dropped")

	assert.Equal(t, "openbsd", reports[0].Sys)
	assert.Equal(t, "7.5", reports[0].SysVer)
	assert.Equal(t, schema.CFTStatus, reports[0].Status)
	assert.Equal(t, "visionfive2", reports[0].BoardID)
	assert.Nil(t, reports[0].LastUpdate, "bulk entries never carry a date")
	assert.Empty(t, reports[0].FileName, "bulk entries have no backing document")

	assert.Equal(t, "haiku", reports[1].Sys)
	assert.Equal(t, "nightly", reports[1].SysVar)
}
