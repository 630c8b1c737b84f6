package expect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restspec/rest/packages/expect"
)

const userDoc = `{
	"user": {
		"name": "ada",
		"age": 36,
		"roles": ["admin", "ops"]
	}
}`

func TestToHaveJSONPath(t *testing.T) {
	assert.True(t, expect.Value(userDoc).ToHaveJSONPath("user.name").Result())
	assert.True(t, expect.Value(userDoc).ToHaveJSONPath("user.roles.1").Result())
	assert.False(t, expect.Value(userDoc).ToHaveJSONPath("user.email").Result())
	assert.True(t, expect.Value([]byte(userDoc)).ToHaveJSONPath("user.age").Result())
	assert.False(t, expect.Value(42).ToHaveJSONPath("user").Result(), "non-JSON subject never matches")
}

func TestToMatchJSONPath(t *testing.T) {
	assert.True(t, expect.Value(userDoc).ToMatchJSONPath("user.name", "ada").Result())
	assert.True(t, expect.Value(userDoc).ToMatchJSONPath("user.age", 36).Result(), "decoded numbers compare by value")
	assert.True(t, expect.Value(userDoc).ToMatchJSONPath("user.roles.0", "admin").Result())
	assert.False(t, expect.Value(userDoc).ToMatchJSONPath("user.name", "grace").Result())
	assert.False(t, expect.Value(userDoc).ToMatchJSONPath("user.email", "none").Result(), "missing path never matches")
}

func TestToMatchJSONSchema(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"properties": {
			"user": {
				"type": "object",
				"required": ["name", "age"],
				"properties": {
					"name": {"type": "string"},
					"age": {"type": "number"}
				}
			}
		},
		"required": ["user"]
	}`)

	assert.True(t, expect.Value(userDoc).ToMatchJSONSchema(schema).Result())
	assert.False(t, expect.Value(`{"user": {"name": "ada"}}`).ToMatchJSONSchema(schema).Result())
	assert.False(t, expect.Value(`not json`).ToMatchJSONSchema(schema).Result())
	assert.False(t, expect.Value(42).ToMatchJSONSchema(schema).Result())
}
