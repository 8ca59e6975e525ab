package style

import (
	"testing"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/modules"
	"github.com/stretchr/testify/assert"
)

func TestRenderModuleList(t *testing.T) {
	out := RenderModuleList([]string{"proxy", "users"}, func(name string) string {
		return "description of " + name
	})

	assert.Contains(t, out, "proxy")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "description of proxy")
}

func TestRenderModuleList_Empty(t *testing.T) {
	out := RenderModuleList(nil, nil)
	assert.Contains(t, out, "No modules")
}

func TestRenderResults(t *testing.T) {
	results := []modules.Result{
		{Module: "proxy"},
		{Module: "packages", Err: errors.New(errors.ErrModuleRun, "apt-get failed")},
		{Module: "users", Err: errors.New(errors.ErrConfirmationDeclined, "declined")},
	}

	out := RenderResults(results)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "proxy")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "apt-get failed")
	assert.Contains(t, out, "skipped")
}
