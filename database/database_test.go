package database

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm/schema"
)

// MySQL cannot put a unique key on a TEXT column, so every indexed string
// column needs a bounded type.
func TestIndexedStringColumnsFitMySQL(t *testing.T) {
	dialector := mysql.New(mysql.Config{})
	cache := &sync.Map{}

	checked := 0
	for _, model := range Models() {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, field := range s.Fields {
			if field.IndirectFieldType.Kind() != reflect.String {
				continue
			}
			_, idx := field.TagSettings["INDEX"]
			_, uniqueIdx := field.TagSettings["UNIQUEINDEX"]
			if !idx && !uniqueIdx {
				continue
			}
			checked++

			colType := strings.ToLower(dialector.DataTypeOf(field))
			assert.NotContains(t, colType, "text", "%s.%s", s.Table, field.DBName)
		}
	}

	// members.email, members.google_sub, payments.stripe_session_id, images.path,
	// admins.username, attendance.day, members.subscription_plan, site_contents.section
	assert.GreaterOrEqual(t, checked, 8)
}
