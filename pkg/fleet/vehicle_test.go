package fleet

import "testing"

func TestVehiclePosition(t *testing.T) {
	tests := []struct {
		name      string
		latitude  string
		longitude string

		expectedLatitude  float64
		expectedLongitude float64
		expectedOK        bool
	}{
		{"valid coordinates", "51.5074", "-0.1278", 51.5074, -0.1278, true},
		{"never reported", "", "", 0, 0, false},
		{"latitude missing", "", "-0.1278", 0, 0, false},
		{"unparsable latitude", "fifty one", "-0.1278", 0, 0, false},
		{"unparsable longitude", "51.5074", "west", 0, 0, false},
		{"latitude out of range", "91.2", "-0.1278", 0, 0, false},
		{"longitude out of range", "51.5074", "-181", 0, 0, false},
		{"southern hemisphere", "-33.8688", "151.2093", -33.8688, 151.2093, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := Vehicle{
				Code:          "V1",
				LastLatitude:  tt.latitude,
				LastLongitude: tt.longitude,
			}

			latitude, longitude, ok := vehicle.Position()

			if ok != tt.expectedOK {
				t.Fatalf("expected ok %v, got %v", tt.expectedOK, ok)
			}

			if latitude != tt.expectedLatitude || longitude != tt.expectedLongitude {
				t.Errorf("expected %f,%f got %f,%f", tt.expectedLatitude, tt.expectedLongitude, latitude, longitude)
			}

			if vehicle.HasPosition() != tt.expectedOK {
				t.Errorf("HasPosition disagrees with Position")
			}
		})
	}
}

func TestVehicleIsMoving(t *testing.T) {
	moving := Vehicle{Code: "V1", Speed: 12.5}
	idle := Vehicle{Code: "V2", Speed: 0}

	if !moving.IsMoving() {
		t.Error("vehicle with speed 12.5 should be moving")
	}
	if idle.IsMoving() {
		t.Error("vehicle with speed 0 should be idle")
	}
}
