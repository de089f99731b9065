package ide

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/google/go-cmp/cmp"
)

func linuxHost(t *testing.T) Host {
	t.Helper()
	return Host{Dir: t.TempDir(), GOOS: "linux", ListSeparator: ':', Path: "/usr/bin:/bin"}
}

func windowsHost(t *testing.T) Host {
	t.Helper()
	return Host{Dir: t.TempDir(), GOOS: "windows", ListSeparator: ';', Path: `C:\Windows;C:\Tools`}
}

func testTarget(name string) Target {
	return Target{
		Name:        name,
		Executable:  "HelloWorld",
		WorkingDir:  "/src/Demos/HelloWorld",
		AssetPath:   "/src/Assets;/src/Demos/HelloWorld/Assets",
		RuntimePath: "/build/Engine;/build/Deps",
	}
}

func readConfigs(t *testing.T, path string) []map[string]any {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var doc struct {
		Version        string           `json:"version"`
		Configurations []map[string]any `json:"configurations"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("invalid JSON in %s: %v", path, err)
	}
	return doc.Configurations
}

func configNames(configs []map[string]any) []string {
	names := make([]string, 0, len(configs))
	for _, c := range configs {
		names = append(names, c["name"].(string))
	}
	return names
}

func TestGenerateVSCode_NoDir(t *testing.T) {
	host := linuxHost(t)

	res, err := GenerateVSCode(host, testTarget("HelloWorld"), Options{})
	if err != nil {
		t.Fatalf("expected no error without .vscode/, got: %v", err)
	}
	if res != nil {
		t.Errorf("result = %+v, want nil", res)
	}
	if _, err := os.Stat(filepath.Join(host.Dir, ".vscode")); !os.IsNotExist(err) {
		t.Error(".vscode/ should not have been created")
	}
}

func TestGenerateVSCode_CreatesFile(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	res, err := GenerateVSCode(host, testTarget("HelloWorld"), Options{})
	if err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}
	if res.Path != VSCodePath(host) {
		t.Errorf("path = %q, want %q", res.Path, VSCodePath(host))
	}
	if res.Replaced || res.Recovered {
		t.Errorf("result = %+v, want fresh insert", res)
	}

	configs := readConfigs(t, VSCodePath(host))
	if len(configs) != 1 {
		t.Fatalf("configurations = %d, want 1", len(configs))
	}
	c := configs[0]
	if c["type"] != "cppdbg" {
		t.Errorf("type = %v, want cppdbg", c["type"])
	}
	if c["request"] != "launch" {
		t.Errorf("request = %v, want launch", c["request"])
	}
	if c["console"] != "internalConsole" {
		t.Errorf("console = %v, want internalConsole", c["console"])
	}
	if _, ok := c["logging"]; ok {
		t.Error("logging should be omitted when Target.Logging is false")
	}

	want := []any{
		map[string]any{"name": "ASSET_PATH", "value": "/src/Assets:/src/Demos/HelloWorld/Assets"},
		map[string]any{"name": "LD_LIBRARY_PATH", "value": "/build/Engine:/build/Deps"},
	}
	if diff := cmp.Diff(want, c["environment"]); diff != "" {
		t.Errorf("environment mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateVSCode_ProgramJoinsBinaryDir(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	target := testTarget("HelloWorld")
	target.BinaryDir = "/build"
	target.Executable = "Demos/HelloWorld/HelloWorld"
	target.Logging = true

	if _, err := GenerateVSCode(host, target, Options{}); err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}

	c := readConfigs(t, VSCodePath(host))[0]
	if want := filepath.Join("/build", "Demos/HelloWorld/HelloWorld"); c["program"] != want {
		t.Errorf("program = %v, want %q", c["program"], want)
	}
	if diff := cmp.Diff(map[string]any{"moduleLoad": false}, c["logging"]); diff != "" {
		t.Errorf("logging mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateVSCode_Windows(t *testing.T) {
	host := windowsHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	target := testTarget("HelloWorld")
	target.AssetPath = `C:\src\Assets;C:\src\Demo\Assets`
	target.RuntimePath = `C:\build\Engine;C:\build\Deps`

	if _, err := GenerateVSCode(host, target, Options{}); err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}

	c := readConfigs(t, VSCodePath(host))[0]
	if c["type"] != "cppvsdbg" {
		t.Errorf("type = %v, want cppvsdbg", c["type"])
	}
	want := []any{
		map[string]any{"name": "ASSET_PATH", "value": `C:\src\Assets;C:\src\Demo\Assets`},
		map[string]any{"name": "PATH", "value": `${env:PATH};C:\build\Engine;C:\build\Deps`},
	}
	if diff := cmp.Diff(want, c["environment"]); diff != "" {
		t.Errorf("environment mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateVSCode_WindowsExpandPath(t *testing.T) {
	host := windowsHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	target := testTarget("HelloWorld")
	target.RuntimePath = `C:\build\Engine`

	if _, err := GenerateVSCode(host, target, Options{ExpandPath: true}); err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}

	env := readConfigs(t, VSCodePath(host))[0]["environment"].([]any)
	path := env[1].(map[string]any)
	if path["value"] != `C:\Windows;C:\Tools;C:\build\Engine` {
		t.Errorf("PATH = %v, want process PATH followed by runtime path", path["value"])
	}
}

func TestGenerateVSCode_Upsert(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)
	existing := `{
  "version": "0.2.0",
  "configurations": [
    {"name": "A", "type": "node", "request": "launch"},
    {"name": "B", "type": "cppdbg", "program": "old"}
  ]
}`
	os.WriteFile(VSCodePath(host), []byte(existing), 0644)

	res, err := GenerateVSCode(host, testTarget("B"), Options{})
	if err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}
	if !res.Replaced {
		t.Error("Replaced = false, want true")
	}

	configs := readConfigs(t, VSCodePath(host))
	if diff := cmp.Diff([]string{"A", "B"}, configNames(configs)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if configs[0]["type"] != "node" {
		t.Errorf("A was modified: %v", configs[0])
	}
	if configs[1]["program"] != "HelloWorld" {
		t.Errorf("B.program = %v, want HelloWorld", configs[1]["program"])
	}
}

func TestGenerateVSCode_Append(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)
	os.WriteFile(VSCodePath(host), []byte(`{"version": "0.2.0", "configurations": [{"name": "A"}]}`), 0644)

	if _, err := GenerateVSCode(host, testTarget("C"), Options{}); err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}

	configs := readConfigs(t, VSCodePath(host))
	if diff := cmp.Diff([]string{"A", "C"}, configNames(configs)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateVSCode_Idempotent(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)
	os.WriteFile(VSCodePath(host), []byte(`{"configurations": [{"name": "Other"}], "compounds": []}`), 0644)

	target := testTarget("HelloWorld")
	GenerateVSCode(host, target, Options{})
	first, _ := os.ReadFile(VSCodePath(host))

	GenerateVSCode(host, target, Options{})
	second, _ := os.ReadFile(VSCodePath(host))

	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("second run changed the file (-first +second):\n%s", diff)
	}
	if n := strings.Count(string(second), `"name": "HelloWorld"`); n != 1 {
		t.Errorf("HelloWorld entries = %d, want 1", n)
	}
}

func TestGenerateVSCode_MalformedFileReplaced(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)
	os.WriteFile(VSCodePath(host), []byte(`{"configurations": [ {"name": "A"`), 0644)

	res, err := GenerateVSCode(host, testTarget("HelloWorld"), Options{})
	if err != nil {
		t.Fatalf("expected malformed file to be recovered, got: %v", err)
	}
	if !res.Recovered {
		t.Error("Recovered = false, want true")
	}

	configs := readConfigs(t, VSCodePath(host))
	if diff := cmp.Diff([]string{"HelloWorld"}, configNames(configs)); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateVSCode_DryRun(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	res, err := GenerateVSCode(host, testTarget("HelloWorld"), Options{DryRun: true})
	if err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}
	if !strings.Contains(string(res.Content), `"name": "HelloWorld"`) {
		t.Errorf("content missing entry:\n%s", res.Content)
	}
	if _, err := os.Stat(VSCodePath(host)); !os.IsNotExist(err) {
		t.Error("dry run should not write launch.json")
	}
}

func TestGenerateVSCode_ExtraArgsAndConsole(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	target := testTarget("HelloWorld")
	target.Args = []string{"--validation", "--width=1280"}

	if _, err := GenerateVSCode(host, target, Options{Console: "integratedTerminal"}); err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}

	c := readConfigs(t, VSCodePath(host))[0]
	if diff := cmp.Diff([]any{"--validation", "--width=1280"}, c["args"]); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
	if c["console"] != "integratedTerminal" {
		t.Errorf("console = %v, want integratedTerminal", c["console"])
	}
}

func TestGolden_VSCode_Linux(t *testing.T) {
	host := linuxHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	res, err := GenerateVSCode(host, testTarget("HelloWorld"), Options{DryRun: true})
	if err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}
	golden.RequireEqual(t, res.Content)
}

func TestGolden_VSCode_Windows(t *testing.T) {
	host := windowsHost(t)
	os.MkdirAll(filepath.Join(host.Dir, ".vscode"), 0755)

	target := testTarget("HelloWorld")
	target.Logging = true

	res, err := GenerateVSCode(host, target, Options{DryRun: true})
	if err != nil {
		t.Fatalf("GenerateVSCode() error: %v", err)
	}
	golden.RequireEqual(t, res.Content)
}
