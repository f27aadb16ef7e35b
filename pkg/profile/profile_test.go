package profile

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		key     string
		want    Kind
		wantErr bool
	}{
		{key: "iphone", want: IPhone},
		{key: "iPad", want: IPad},
		{key: "gplay_phone", want: GooglePlayPhone},
		{key: "GooglePlayPhone", want: GooglePlayPhone},
		{key: "gplay-tablet", want: GooglePlayTablet},
		{key: "feature_graphic", want: FeatureGraphic},
		{key: "FeatureGraphic", want: FeatureGraphic},
		{key: "android", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseKind(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedDeviceProfile) {
					t.Fatalf("expected ErrUnsupportedDeviceProfile, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, p := range All() {
		kind, err := ParseKind(p.Kind.String())
		if err != nil {
			t.Fatalf("%s: %v", p.Kind, err)
		}
		if kind != p.Kind {
			t.Errorf("expected %s, got %s", p.Kind, kind)
		}
	}
}

func TestFinalResolutions(t *testing.T) {
	expected := map[Kind]Size{
		IPhone:           {Width: 1290, Height: 2796},
		IPad:             {Width: 2048, Height: 2732},
		GooglePlayPhone:  {Width: 1080, Height: 1920},
		GooglePlayTablet: {Width: 1600, Height: 2560},
		FeatureGraphic:   {Width: 1024, Height: 500},
	}
	for kind, size := range expected {
		p, err := Lookup(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if p.Final != size {
			t.Errorf("%s: expected %+v, got %+v", kind, size, p.Final)
		}
	}
}

func TestLookupUnknownKind(t *testing.T) {
	_, err := Lookup(Kind(42))
	if !errors.Is(err, ErrUnsupportedDeviceProfile) {
		t.Errorf("expected ErrUnsupportedDeviceProfile, got %v", err)
	}
}

func TestMockupCornerRadius(t *testing.T) {
	// 165 * 1404 / 1290 = 179.58
	if MockupCornerRadius != 179 {
		t.Errorf("expected 179, got %d", MockupCornerRadius)
	}
}

func TestOnlyIPhoneUsesDeviceFrame(t *testing.T) {
	for _, p := range All() {
		if p.UsesDeviceFrame != (p.Kind == IPhone) {
			t.Errorf("%s: UsesDeviceFrame = %v", p.Kind, p.UsesDeviceFrame)
		}
		if (p.Banner != nil) != (p.Kind == FeatureGraphic) {
			t.Errorf("%s: unexpected banner configuration", p.Kind)
		}
	}
}

func TestAllOrdered(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("expected 5 profiles, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Kind >= all[i].Kind {
			t.Errorf("profiles not ordered at %d", i)
		}
	}
}
