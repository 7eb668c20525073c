package ticket

type Tier string

const (
	TierEarlyBird Tier = "early_bird"
	TierRegular   Tier = "regular"
	TierVIP       Tier = "vip"
	TierGroup     Tier = "group"
	TierFree      Tier = "free"
)

func (t Tier) IsValid() bool {
	switch t {
	case TierEarlyBird, TierRegular, TierVIP, TierGroup, TierFree:
		return true
	default:
		return false
	}
}

func (t Tier) String() string { return string(t) }

type InstanceStatus string

const (
	InstanceAvailable InstanceStatus = "available"
	InstanceRedeemed  InstanceStatus = "redeemed"
	InstanceVoid      InstanceStatus = "void"
)

func (s InstanceStatus) IsValid() bool {
	switch s {
	case InstanceAvailable, InstanceRedeemed, InstanceVoid:
		return true
	default:
		return false
	}
}

func (s InstanceStatus) String() string { return string(s) }
