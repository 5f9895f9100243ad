package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ontogen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadProject(t *testing.T) {
	require := require.New(t)
	path := writeProject(t, `
shapes: shapes.ttl
context: context.jsonld
target: ./model
package: github.com/org/project/model
prefix_constants: true
`)
	cfg, err := loadProject(path)
	require.NoError(err)
	require.Equal("shapes.ttl", cfg.Shapes)
	require.Equal("context.jsonld", cfg.Context)
	require.Equal("./model", cfg.Target)
	require.Equal("github.com/org/project/model", cfg.Package)
	require.True(cfg.PrefixConstants)
}

func TestLoadProjectErrors(t *testing.T) {
	require := require.New(t)
	_, err := loadProject("no/such/file.yaml")
	require.Error(err)

	path := writeProject(t, "shapes: [not, a, string]")
	_, err = loadProject(path)
	require.Error(err)
}

func TestMergeFlagsOverride(t *testing.T) {
	require := require.New(t)
	cfg := &projectConfig{Shapes: "file.ttl", Target: "./a", Package: "pkg/a"}
	cfg.merge(projectConfig{Target: "./b", PrefixConstants: true})

	require.Equal("file.ttl", cfg.Shapes, "unset flags keep file values")
	require.Equal("./b", cfg.Target, "set flags win")
	require.Equal("pkg/a", cfg.Package)
	require.True(cfg.PrefixConstants)
}

func TestValidate(t *testing.T) {
	require := require.New(t)
	require.Error((&projectConfig{}).validate())
	require.Error((&projectConfig{Shapes: "s.ttl"}).validate())
	require.Error((&projectConfig{Target: "./out"}).validate())
	require.NoError((&projectConfig{Shapes: "s.ttl", Target: "./out"}).validate())
}

func TestResolveConfig(t *testing.T) {
	require := require.New(t)
	path := writeProject(t, "shapes: a.ttl\ntarget: ./out\n")

	cfg, err := resolveConfig(path, projectConfig{Context: "c.jsonld"})
	require.NoError(err)
	require.Equal("a.ttl", cfg.Shapes)
	require.Equal("c.jsonld", cfg.Context)

	// Flags alone are enough; the project file is optional.
	cfg, err = resolveConfig("", projectConfig{Shapes: "b.ttl", Target: "./out"})
	require.NoError(err)
	require.Equal("b.ttl", cfg.Shapes)

	_, err = resolveConfig("", projectConfig{})
	require.Error(err)
}
