package fleet

type Group struct {
	Code string `groups:"basic"`
	Name string `groups:"basic"`
}
