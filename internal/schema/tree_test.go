package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bianoble/viteconf/internal/value"
)

func TestTreeOmitsUnsetFields(t *testing.T) {
	cfg := &Config{
		Server: &Server{Port: value.Int(4000)},
		Build:  &BuildOptions{OutDir: value.String("custom_dist")},
	}

	got := cfg.Tree()

	want := value.NewMap().
		Set("server", value.MapOf(value.NewMap().Set("port", value.Int(4000)))).
		Set("build", value.MapOf(value.NewMap().Set("outDir", value.String("custom_dist"))))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeNilConfig(t *testing.T) {
	var cfg *Config
	assert.Equal(t, 0, cfg.Tree().Len())
}

func TestTreeFieldOrder(t *testing.T) {
	cfg := &Config{
		Worker:  &WorkerOptions{Format: value.String("es")},
		Plugins: value.List(value.Raw("a()")),
		Base:    value.String("/app/"),
	}

	assert.Equal(t, []string{"plugins", "base", "worker"}, cfg.Tree().Keys())
}

func TestTreeAliases(t *testing.T) {
	cfg := &Config{Resolve: &Resolve{
		Alias: []Alias{
			{Find: value.String("@"), Replacement: value.String("./src")},
			{Find: value.Raw("/^~/"), Replacement: value.Raw("nodeModules")},
		},
		MainFields: value.Of([]string{"module"}),
	}}

	resolve, ok := cfg.Tree().Get("resolve")
	assert.True(t, ok)

	alias, _ := resolve.Map().Get("alias")
	want := value.List(
		value.MapOf(value.NewMap().Set("find", value.String("@")).Set("replacement", value.String("./src"))),
		value.MapOf(value.NewMap().Set("find", value.Raw("/^~/")).Set("replacement", value.Raw("nodeModules"))),
	)
	assert.True(t, alias.Equal(want), "alias = %v", alias)
}

func TestTreeOrSection(t *testing.T) {
	scalar := &Config{Server: &Server{HMR: ScalarOf[HMROptions](value.Bool(false))}}
	server, _ := scalar.Tree().Get("server")
	hmr, _ := server.Map().Get("hmr")
	assert.True(t, hmr.Equal(value.Bool(false)))

	section := &Config{Server: &Server{HMR: SectionOf(HMROptions{Port: value.Int(24678), Overlay: value.Bool(false)})}}
	server, _ = section.Tree().Get("server")
	hmr, _ = server.Map().Get("hmr")
	want := value.MapOf(value.NewMap().Set("port", value.Int(24678)).Set("overlay", value.Bool(false)))
	assert.True(t, hmr.Equal(want), "hmr = %v", hmr)

	unset := &Config{Server: &Server{}}
	server, _ = unset.Tree().Get("server")
	assert.False(t, server.Map().Has("hmr"))
	assert.Equal(t, value.KindMap, server.Kind(), "an empty section is still emitted")
}

func TestTreeSharesNoStateWithRepeatedCalls(t *testing.T) {
	cfg := &Config{Build: &BuildOptions{RollupOptions: value.MapOf(value.NewMap().Set("jsx", value.MapOf(nil)))}}

	first := cfg.Tree()
	first.Set("extra", value.Bool(true))

	second := cfg.Tree()
	assert.False(t, second.Has("extra"))
}
