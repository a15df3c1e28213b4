package optional

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type serverConfig struct {
	Host    Option[string] `json:"host,omitzero" yaml:"host,omitempty"`
	Port    Option[int]    `json:"port" yaml:"port"`
	Verbose Option[bool]   `json:"verbose" yaml:"verbose"`
}

func TestJSONMarshal(t *testing.T) {
	cfg := serverConfig{
		Host: Some("localhost"),
		Port: Some(8080),
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"host":"localhost","port":8080,"verbose":null}`, string(data))
}

func TestJSONMarshalOmitZero(t *testing.T) {
	data, err := json.Marshal(serverConfig{Port: Some(1)})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "host", "a None field tagged omitzero must vanish")
}

func TestJSONUnmarshal(t *testing.T) {
	var cfg serverConfig
	err := json.Unmarshal([]byte(`{"host":"h","port":null,"verbose":true}`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, Some("h"), cfg.Host)
	assert.Equal(t, None[int](), cfg.Port, "JSON null must decode to None")
	assert.Equal(t, Some(true), cfg.Verbose)

	var empty serverConfig
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Equal(t, None[string](), empty.Host, "a missing field stays None")
}

func TestJSONRoundTrip(t *testing.T) {
	for _, o := range []Option[int]{Some(42), None[int]()} {
		data, err := json.Marshal(o)
		require.NoError(t, err)
		var back Option[int]
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, o, back)
	}
}

func TestJSONUnmarshalFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.optional")
	defer teardown()
	//
	var o Option[int]
	err := json.Unmarshal([]byte(`"not a number"`), &o)
	assert.Error(t, err)
	assert.True(t, o.IsNone(), "a failed decode must leave the option empty")
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := serverConfig{
		Host: Some("localhost"),
		Port: None[int](),
	}
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	var back serverConfig
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, cfg.Host, back.Host)
	assert.Equal(t, cfg.Port, back.Port)
}

func TestYAMLUnmarshalNull(t *testing.T) {
	var cfg serverConfig
	err := yaml.Unmarshal([]byte("host: null\nport: 80\n"), &cfg)
	require.NoError(t, err)
	assert.Equal(t, None[string](), cfg.Host)
	assert.Equal(t, Some(80), cfg.Port)
}

func TestYAMLUnmarshalFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.optional")
	defer teardown()
	//
	var o Option[int]
	err := yaml.Unmarshal([]byte(`"not a number"`), &o)
	assert.Error(t, err)
}

func TestSQLScan(t *testing.T) {
	var o Option[int64]
	require.NoError(t, o.Scan(int64(42)))
	assert.Equal(t, Some(int64(42)), o)
	require.NoError(t, o.Scan(nil))
	assert.Equal(t, None[int64](), o, "an SQL NULL must scan to None")
}

func TestSQLValue(t *testing.T) {
	v, err := Some(int64(7)).Value()
	require.NoError(t, err)
	assert.EqualValues(t, int64(7), v)
	v, err = None[int64]().Value()
	require.NoError(t, err)
	assert.Nil(t, v, "None must become an SQL NULL")
}

func TestIsZero(t *testing.T) {
	assert.True(t, None[int]().IsZero())
	assert.False(t, Some(0).IsZero(), "Some of the zero value is still present")
}
