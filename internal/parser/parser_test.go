package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantHit bool
	}{
		{
			name:    "leading address",
			line:    `192.168.1.1 - - [03/Dec/2024:10:12:34 +0000] "GET /home HTTP/1.1" 200 512`,
			want:    "192.168.1.1",
			wantHit: true,
		},
		{
			name:    "first of several addresses",
			line:    `10.0.0.5 forwarded for 203.0.113.5 "GET / HTTP/1.1"`,
			want:    "10.0.0.5",
			wantHit: true,
		},
		{
			name:    "address in the middle",
			line:    `client=172.16.0.9 "POST /login HTTP/1.1"`,
			want:    "172.16.0.9",
			wantHit: true,
		},
		{
			name:    "out of range octets still match",
			line:    `999.999.999.999 - - "GET / HTTP/1.1"`,
			want:    "999.999.999.999",
			wantHit: true,
		},
		{
			name:    "three groups only",
			line:    `1.2.3 - - "GET / HTTP/1.1"`,
			wantHit: false,
		},
		{
			name:    "empty line",
			line:    "",
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAddress(tt.line)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantHit bool
	}{
		{name: "get", line: `1.1.1.1 "GET /home HTTP/1.1" 200`, want: "/home", wantHit: true},
		{name: "post", line: `1.1.1.1 "POST /login HTTP/1.1" 401`, want: "/login", wantHit: true},
		{name: "root", line: `1.1.1.1 "GET / HTTP/1.1" 200`, want: "/", wantHit: true},
		{name: "dots slashes hyphens", line: `"GET /static/app-v2.min.js HTTP/1.1"`, want: "/static/app-v2.min.js", wantHit: true},
		{name: "first of two", line: `"GET /a HTTP/1.1" "POST /b HTTP/1.1"`, want: "/a", wantHit: true},
		{name: "other method", line: `1.1.1.1 "PUT /home HTTP/1.1" 200`, wantHit: false},
		{name: "other protocol", line: `1.1.1.1 "GET /home HTTP/2.0" 200`, wantHit: false},
		{name: "unquoted", line: `1.1.1.1 GET /home HTTP/1.1 200`, wantHit: false},
		{name: "query string", line: `1.1.1.1 "GET /search?q=go HTTP/1.1" 200`, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractEndpoint(tt.line)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsFailedLogin(t *testing.T) {
	assert.True(t, IsFailedLogin(`203.0.113.5 "POST /login HTTP/1.1" 401 128 "Invalid credentials"`))
	assert.False(t, IsFailedLogin(`203.0.113.5 "POST /login HTTP/1.1" 401 128 Invalid credentials`))
	assert.False(t, IsFailedLogin(`203.0.113.5 "POST /login HTTP/1.1" 200`))
}

func TestClassify(t *testing.T) {
	c := Classify(`203.0.113.5 - - [03/Dec/2024:10:12:34 +0000] "POST /login HTTP/1.1" 401 128 "Invalid credentials"`)
	assert.Equal(t, Classification{
		Address:     "203.0.113.5",
		HasAddress:  true,
		Endpoint:    "/login",
		HasEndpoint: true,
		FailedLogin: true,
	}, c)
	assert.True(t, c.CountsFailedLogin())

	c = Classify(`- - "Invalid credentials"`)
	assert.True(t, c.FailedLogin)
	assert.False(t, c.CountsFailedLogin())

	assert.Equal(t, Classification{}, Classify("nothing to see here"))
}
