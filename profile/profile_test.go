package profile

import "testing"

func TestMake_AppliesOptions(t *testing.T) {
	mode, path, quiet := Make(WithMode("cpu"), WithPath("/tmp/p"), WithQuiet(true))()

	if mode != "cpu" || path != "/tmp/p" || !quiet {
		t.Errorf("Make() = %q, %q, %v", mode, path, quiet)
	}
}

func TestConfig_Start_EmptyModeIsNoop(t *testing.T) {
	p := Make(WithPath(t.TempDir())).Start()

	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", p)
	}

	p.Stop()
}

func TestConfig_Start_UnknownModeIsNoop(t *testing.T) {
	p := Make(WithMode("nonsense")).Start()

	if _, ok := p.(ignore); !ok {
		t.Errorf("Start() = %T, want no-op", p)
	}

	p.Stop()
}
