package simulation

import "testing"

func TestSpecOfKnownTypes(t *testing.T) {
	cases := []struct {
		kind           ManufacturerType
		name           string
		cruiseSpeed    float64
		batteryCap     float64
		timeToCharge   float64
		energyPerMile  float64
		passengerCount int
		faultProb      float64
	}{
		{Alpha, "Alpha", 120, 320, 0.60, 1.6, 4, 0.25},
		{Beta, "Beta", 100, 100, 0.20, 1.5, 5, 0.10},
		{Charlie, "Charlie", 160, 220, 0.80, 2.2, 3, 0.05},
		{Delta, "Delta", 90, 120, 0.62, 0.8, 2, 0.22},
		{Echo, "Echo", 30, 150, 0.30, 5.8, 2, 0.61},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := SpecOf(c.kind)
			if spec.Name != c.name {
				t.Errorf("Name = %s, want %s", spec.Name, c.name)
			}
			if spec.CruiseSpeedMPH != c.cruiseSpeed {
				t.Errorf("CruiseSpeedMPH = %v, want %v", spec.CruiseSpeedMPH, c.cruiseSpeed)
			}
			if spec.BatteryCapacityKWh != c.batteryCap {
				t.Errorf("BatteryCapacityKWh = %v, want %v", spec.BatteryCapacityKWh, c.batteryCap)
			}
			if spec.TimeToChargeHours != c.timeToCharge {
				t.Errorf("TimeToChargeHours = %v, want %v", spec.TimeToChargeHours, c.timeToCharge)
			}
			if spec.EnergyUseKWhPerMile != c.energyPerMile {
				t.Errorf("EnergyUseKWhPerMile = %v, want %v", spec.EnergyUseKWhPerMile, c.energyPerMile)
			}
			if spec.PassengerCount != c.passengerCount {
				t.Errorf("PassengerCount = %d, want %d", spec.PassengerCount, c.passengerCount)
			}
			if spec.FaultProbPerHour != c.faultProb {
				t.Errorf("FaultProbPerHour = %v, want %v", spec.FaultProbPerHour, c.faultProb)
			}
		})
	}
}

func TestSpecOfInvalidTypePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("SpecOf did not panic on an out-of-range manufacturer type")
		}
	}()
	SpecOf(ManufacturerType(999))
}

func TestManufacturerTypesOrder(t *testing.T) {
	types := ManufacturerTypes()
	want := []ManufacturerType{Alpha, Beta, Charlie, Delta, Echo}
	if len(types) != len(want) {
		t.Fatalf("got %d types, want %d", len(types), len(want))
	}
	for i, k := range want {
		if types[i] != k {
			t.Errorf("types[%d] = %v, want %v", i, types[i], k)
		}
	}
}
