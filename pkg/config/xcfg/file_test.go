package xcfg

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appConfig 测试用配置结构体
type appConfig struct {
	App    appSection    `koanf:"app"`
	Server serverSection `koanf:"server"`
}

type appSection struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
	Debug   bool   `koanf:"debug"`
}

type serverSection struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

const testYAMLContent = `
app:
  name: test-app
  version: "1.0.0"
  debug: true
server:
  host: localhost
  port: 8080
`

const testJSONContent = `{
  "app": {
    "name": "test-app",
    "version": "1.0.0",
    "debug": true
  },
  "server": {
    "host": "localhost",
    "port": 8080
  }
}`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, name)
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
	return path
}

// =============================================================================
// Load 测试
// =============================================================================

func TestLoad_YAML(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, path, f.Path())
	assert.Equal(t, FormatYAML, f.Format())

	cfg := f.Value()
	assert.Equal(t, "test-app", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_JSON(t *testing.T) {
	path := createTempFile(t, "config.json", testJSONContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, f.Format())
	assert.Equal(t, "test-app", f.Value().App.Name)
	assert.Equal(t, 8080, f.Value().Server.Port)
}

func TestLoad_YMLExtension(t *testing.T) {
	path := createTempFile(t, "config.yml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f.Format())
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load[appConfig]("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := createTempFile(t, "config.toml", "key = 1")

	_, err := Load[appConfig](path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[appConfig]("/nonexistent/config.yaml")
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := createTempFile(t, "config.yaml", "app:\n  name: [unclosed")

	_, err := Load[appConfig](path)
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := createTempFile(t, "config.yaml", "")

	f, err := Load[appConfig](path)
	require.NoError(t, err)

	// 空文件产生零值快照
	assert.Equal(t, appConfig{}, f.Value())
}

// =============================================================================
// LoadBytes 测试
// =============================================================================

func TestLoadBytes(t *testing.T) {
	f, err := LoadBytes[appConfig]([]byte(testYAMLContent), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "", f.Path())
	assert.Equal(t, "test-app", f.Value().App.Name)
}

func TestLoadBytes_InvalidFormat(t *testing.T) {
	_, err := LoadBytes[appConfig]([]byte("x: 1"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadBytes_Empty(t *testing.T) {
	f, err := LoadBytes[appConfig](nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, appConfig{}, f.Value())
}

func TestLoadBytes_NotReloadable(t *testing.T) {
	f, err := LoadBytes[appConfig]([]byte(testYAMLContent), FormatYAML)
	require.NoError(t, err)

	assert.ErrorIs(t, f.Reload(), ErrNotReloadable)

	_, err = f.Watch(nil)
	assert.ErrorIs(t, err, ErrNotReloadable)
}

// =============================================================================
// Koanf 测试
// =============================================================================

func TestFile_Koanf(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)

	k := f.Koanf()
	require.NotNil(t, k)
	assert.Equal(t, "test-app", k.String("app.name"))
	assert.Equal(t, 8080, k.Int("server.port"))
}

func TestLoad_CustomDelim(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path, WithDelim("/"))
	require.NoError(t, err)
	assert.Equal(t, "test-app", f.Koanf().String("app/name"))
}

func TestLoad_CustomTag(t *testing.T) {
	type jsonTagged struct {
		App struct {
			Name string `json:"name"`
		} `json:"app"`
	}

	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[jsonTagged](path, WithTag("json"))
	require.NoError(t, err)
	assert.Equal(t, "test-app", f.Value().App.Name)
}

// =============================================================================
// Reload 测试
// =============================================================================

func TestFile_Reload(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)
	require.Equal(t, "test-app", f.Value().App.Name)

	updated := `
app:
  name: updated-app
  version: "2.0.0"
server:
  host: localhost
  port: 9090
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0600))

	require.NoError(t, f.Reload())
	assert.Equal(t, "updated-app", f.Value().App.Name)
	assert.Equal(t, 9090, f.Value().Server.Port)
}

func TestFile_ReloadKeepsSnapshotOnError(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)

	// 写入非法内容，重载失败后旧快照保持不变
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0600))

	err = f.Reload()
	require.Error(t, err)
	assert.Equal(t, "test-app", f.Value().App.Name)
}

func TestFile_ReloadConcurrent(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				_ = f.Reload()
				_ = f.Value()
				_ = f.Koanf().String("app.name")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "test-app", f.Value().App.Name)
}

// 旧快照在 Reload 后仍可安全使用
func TestFile_SnapshotStableAcrossReload(t *testing.T) {
	path := createTempFile(t, "config.yaml", testYAMLContent)

	f, err := Load[appConfig](path)
	require.NoError(t, err)

	before := f.Value()

	updated := "app:\n  name: changed\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0600))
	require.NoError(t, f.Reload())

	assert.Equal(t, "test-app", before.App.Name)
	assert.Equal(t, "changed", f.Value().App.Name)
}
