package enka

// Snapshot is the body of an Enka.Network uid response saved to disk.
type Snapshot struct {
	AvatarInfoList []AvatarInfo `json:"avatarInfoList"`
	PlayerInfo     *struct {
		Nickname string `json:"nickname"`
	} `json:"playerInfo"`
}

type AvatarInfo struct {
	AvatarID  int         `json:"avatarId"`
	Name      *string     `json:"name,omitempty"`
	EquipList []EquipItem `json:"equipList"`
}

type EquipItem struct {
	ItemID    int             `json:"itemId"`
	Reliquary *EquipReliquary `json:"reliquary,omitempty"`
	Flat      EquipFlat       `json:"flat"`
}

type EquipReliquary struct {
	Level int `json:"level"`
}

type EquipFlat struct {
	ItemType  string `json:"itemType"`
	EquipType string `json:"equipType"`

	SetNameTextMapHash string `json:"setNameTextMapHash"`
	RankLevel          int    `json:"rankLevel"`

	ReliquaryMainstat *struct {
		MainPropID string  `json:"mainPropId"`
		StatValue  float64 `json:"statValue"`
	} `json:"reliquaryMainstat,omitempty"`

	ReliquarySubstats []struct {
		AppendPropID string  `json:"appendPropId"`
		StatValue    float64 `json:"statValue"`
	} `json:"reliquarySubstats,omitempty"`
}
