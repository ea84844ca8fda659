package fleet

import "fmt"

type AddressLabel struct {
	Label string `groups:"basic"`
}

// ComposeAddressLabel prefers a short "road, city" form and falls back to
// the provider's full display name when either part is missing.
func ComposeAddressLabel(road string, city string, displayName string) AddressLabel {
	if road != "" && city != "" {
		return AddressLabel{Label: fmt.Sprintf("%s, %s", road, city)}
	}

	return AddressLabel{Label: displayName}
}
