package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restful_booker/internal/domain"
)

// row scans fixed column values into the destinations in order.
type row []any

func (r row) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *int:
			*p = r[i].(int)
		case *bool:
			*p = r[i].(bool)
		case *string:
			*p = r[i].(string)
		case *domain.RoomType:
			*p = domain.RoomType(r[i].(string))
		case *[]byte:
			*p = []byte(r[i].(string))
		}
	}
	return nil
}

func TestScanRoom_Features(t *testing.T) {
	rm, err := scanRoom(row{4, 101, "Single", true, "img", "desc", `["WiFi","TV"]`, 100})
	require.NoError(t, err)
	assert.Equal(t, []string{"WiFi", "TV"}, rm.Features)
	assert.Equal(t, domain.RoomType("Single"), rm.Type)
}

func TestScanRoom_CorruptFeaturesIsAnError(t *testing.T) {
	_, err := scanRoom(row{4, 101, "Single", true, "img", "desc", `{"WiFi"`, 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "room 4 features")
}
