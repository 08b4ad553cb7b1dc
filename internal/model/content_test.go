package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentParagraphs(t *testing.T) {
	c := &Content{Content: "First line\nstill first\n\n\n  Second  \n \t\nThird"}
	assert.Equal(t, []string{"First line\nstill first", "Second", "Third"}, c.Paragraphs())

	empty := &Content{Content: "\n\n  \n"}
	assert.Empty(t, empty.Paragraphs())
}

func TestContentTypeValid(t *testing.T) {
	for _, ct := range []ContentType{ContentAbout, ContentContact, ContentPrivacy, ContentDisclaimer} {
		assert.True(t, ct.Valid(), ct)
	}
	assert.False(t, ContentType("faq").Valid())
	assert.False(t, ContentType("").Valid())
}

func TestAdConfigUnitIDsRoundTrip(t *testing.T) {
	var a AdConfig
	assert.Equal(t, []string{}, a.GetAdUnitIDs())
	a.SetAdUnitIDs([]string{"ca-app-pub-1/2", "ca-app-pub-1/3"})
	assert.Equal(t, []string{"ca-app-pub-1/2", "ca-app-pub-1/3"}, a.GetAdUnitIDs())
	a.SetAdUnitIDs(nil)
	assert.Equal(t, "[]", string(a.AdUnitIDs))
}

func TestFitsColumnCountsCharacters(t *testing.T) {
	assert.True(t, FitsColumn(strings.Repeat("a", MaxUserIDLength), MaxUserIDLength))
	assert.False(t, FitsColumn(strings.Repeat("a", MaxUserIDLength+1), MaxUserIDLength))
	// 多字节字符按字符计
	assert.True(t, FitsColumn(strings.Repeat("玩", MaxUsernameLength), MaxUsernameLength))
}
