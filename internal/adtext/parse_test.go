package adtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		expected    Result
	}{
		{
			description: "meta tag yields publisher and identical meta tag",
			raw:         `<meta name="google-adsense-account" content="ca-pub-1234567890123456">`,
			expected: Result{
				PublisherID: "ca-pub-1234567890123456",
				MetaTag:     "ca-pub-1234567890123456",
				AdUnitIDs:   []string{},
			},
		},
		{
			description: "ads.txt line without meta tag",
			raw:         "google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0",
			expected: Result{
				PublisherID:   "ca-pub-1234567890123456",
				MetaTag:       "ca-pub-1234567890123456",
				AdsTxtContent: "google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0",
				AdUnitIDs:     []string{},
			},
		},
		{
			description: "ads.txt lines keep order and are trimmed, other lines dropped",
			raw:         "  Google.com, pub-1, DIRECT, f08c47fec0942fa0  \nexample.org, 42, RESELLER\ngoogle.com, pub-2, RESELLER, f08c47fec0942fa0",
			expected: Result{
				PublisherID:   "ca-pub-1",
				MetaTag:       "ca-pub-1",
				AdsTxtContent: "Google.com, pub-1, DIRECT, f08c47fec0942fa0\ngoogle.com, pub-2, RESELLER, f08c47fec0942fa0",
				AdUnitIDs:     []string{},
			},
		},
		{
			description: "earliest publisher id wins over a later meta tag",
			raw:         "old id ca-pub-111\n<meta content=\"ca-pub-222\" name=\"google-adsense-account\"/>",
			expected: Result{
				PublisherID: "ca-pub-111",
				MetaTag:     "ca-pub-111",
				AdUnitIDs:   []string{},
			},
		},
		{
			description: "ca-pub token outranks an ads.txt record",
			raw:         "google.com, pub-333, DIRECT\nclient=ca-pub-444",
			expected: Result{
				PublisherID:   "ca-pub-444",
				MetaTag:       "ca-pub-444",
				AdsTxtContent: "google.com, pub-333, DIRECT",
				AdUnitIDs:     []string{},
			},
		},
		{
			description: "entity-escaped attribute value is decoded",
			raw:         `<ins class="adsbygoogle" data-ad-client="ca&#45;pub-77" data-ad-slot="ca&#45;app-pub-77/88"></ins>`,
			expected: Result{
				PublisherID: "ca-pub-77",
				MetaTag:     "ca-pub-77",
				AdUnitIDs:   []string{"ca-app-pub-77/88"},
			},
		},
		{
			description: "meta tag alone",
			raw:         "<meta content=\"ca-pub-222\" name=\"google-adsense-account\"/>",
			expected: Result{
				PublisherID: "ca-pub-222",
				MetaTag:     "ca-pub-222",
				AdUnitIDs:   []string{},
			},
		},
		{
			description: "bare publisher id anywhere in the text",
			raw:         `<script async src="https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client=ca-pub-987"></script>`,
			expected: Result{
				PublisherID: "ca-pub-987",
				MetaTag:     "ca-pub-987",
				AdUnitIDs:   []string{},
			},
		},
		{
			description: "ad unit ids are de-duplicated in first-seen order",
			raw:         "ca-app-pub-1/20 ca-app-pub-3/40\nca-app-pub-1/20, ca-app-pub-5/60",
			expected: Result{
				AdUnitIDs: []string{"ca-app-pub-1/20", "ca-app-pub-3/40", "ca-app-pub-5/60"},
			},
		},
		{
			description: "ad unit ids are not mistaken for publisher ids",
			raw:         "ca-app-pub-123/456",
			expected: Result{
				AdUnitIDs: []string{"ca-app-pub-123/456"},
			},
		},
		{
			description: "unrecognised text gives empty fields",
			raw:         "hello world\nca-pub-\nca-app-pub-12/",
			expected:    Result{AdUnitIDs: []string{}},
		},
		{
			description: "empty input",
			raw:         "",
			expected:    Result{AdUnitIDs: []string{}},
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			assert.Equal(t, test.expected, Parse(test.raw))
		})
	}
}

func TestAdsTxtPublisherID(t *testing.T) {
	assert.Equal(t, "ca-pub-42", adsTxtPublisherID("google.com, ca-pub-42, DIRECT"))
	assert.Equal(t, "ca-pub-42", adsTxtPublisherID("GOOGLE.COM,pub-42"))
	assert.Empty(t, adsTxtPublisherID("google.com.evil, pub-42"))
	assert.Empty(t, adsTxtPublisherID("google.com, pub-4x2"))
	assert.Empty(t, adsTxtPublisherID("google.com"))
}
