package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdTextParseCommand(t *testing.T) {
	cmd := newAdTextCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0\n"))
	cmd.SetArgs([]string{"parse"})
	require.NoError(t, cmd.Execute())

	var res struct {
		PublisherID   string   `json:"publisher_id"`
		AdsTxtContent string   `json:"ads_txt_content"`
		AdUnitIDs     []string `json:"ad_unit_ids"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "ca-pub-1234567890123456", res.PublisherID)
	assert.Equal(t, "google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0", res.AdsTxtContent)
	assert.Equal(t, []string{}, res.AdUnitIDs)
}

func TestEnsureDatabaseExistsSkipsDefaultDB(t *testing.T) {
	// 目标就是 postgres 默认库时无需连接
	assert.NoError(t, ensureDatabaseExists("postgres://u:p@127.0.0.1:1/postgres"))
	assert.NoError(t, ensureDatabaseExists("postgres://u:p@127.0.0.1:1/"))
}
