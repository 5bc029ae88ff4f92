package metadata

import "testing"

func TestProviderTypeMapName(t *testing.T) {
	toml := `
[types.StringBuilder]
map_to = "StrBuf"

[types.StringBuilder.methods]
append = "push"
toString = "build"
`
	p, err := Parse([]byte(toml))
	if err != nil {
		t.Fatalf("Parse 失败: %v", err)
	}

	tests := []struct {
		name   string
		method string
		want   string
	}{
		{"StringBuilder", "", "StrBuf"},
		{"List", "", "List"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.TypeMapName(tt.name)
			if got != tt.want {
				t.Errorf("TypeMapName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	methodTests := []struct {
		typeName string
		method   string
		want     string
	}{
		{"StringBuilder", "append", "push"},
		{"StringBuilder", "toString", "build"},
		{"StringBuilder", "clear", "clear"},
		{"Unknown", "foo", "foo"},
	}
	for _, tt := range methodTests {
		t.Run(tt.typeName+"."+tt.method, func(t *testing.T) {
			got := p.MethodMapName(tt.typeName, tt.method)
			if got != tt.want {
				t.Errorf("MethodMapName(%q, %q) = %q, want %q", tt.typeName, tt.method, got, tt.want)
			}
		})
	}
}

func TestEmptyProviderIsIdentity(t *testing.T) {
	p := Empty()
	if got := p.TypeMapName("Foo"); got != "Foo" {
		t.Errorf("TypeMapName on empty provider = %q, want %q", got, "Foo")
	}
	if got := p.MethodMapName("Foo", "bar"); got != "bar" {
		t.Errorf("MethodMapName on empty provider = %q, want %q", got, "bar")
	}
}

func TestNilProviderIsIdentity(t *testing.T) {
	var p *Provider
	if got := p.TypeMapName("Foo"); got != "Foo" {
		t.Errorf("TypeMapName on nil provider = %q, want %q", got, "Foo")
	}
	if got := p.MethodMapName("Foo", "bar"); got != "bar" {
		t.Errorf("MethodMapName on nil provider = %q, want %q", got, "bar")
	}
}
