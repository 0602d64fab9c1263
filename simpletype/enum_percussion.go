package simpletype

import (
	"github.com/signadot/mxl/enum"
	"github.com/signadot/mxl/label"
)

// BeaterValue is a beater, mallet or stick pictogram without a material.
type BeaterValue int

const (
	BeaterValueBow BeaterValue = iota
	BeaterValueChimeHammer
	BeaterValueCoin
	BeaterValueDrumStick
	BeaterValueFinger
	BeaterValueFingernail
	BeaterValueFist
	BeaterValueGuiroScraper
	BeaterValueHammer
	BeaterValueHand
	BeaterValueJazzStick
	BeaterValueKnittingNeedle
	BeaterValueMetalHammer
	BeaterValueSlideBrushOnGong
	BeaterValueSnareStick
	BeaterValueSpoonMallet
	BeaterValueSuperball
	BeaterValueTriangleBeater
	BeaterValueTriangleBeaterPlain
	BeaterValueWireBrush
)

var beaterValueLabels = label.Define("beater-value", label.Lower,
	label.E(BeaterValueBow, "Bow"),
	label.As(BeaterValueChimeHammer, "ChimeHammer", "chime hammer"),
	label.E(BeaterValueCoin, "Coin"),
	label.As(BeaterValueDrumStick, "DrumStick", "drum stick"),
	label.E(BeaterValueFinger, "Finger"),
	label.E(BeaterValueFingernail, "Fingernail"),
	label.E(BeaterValueFist, "Fist"),
	label.As(BeaterValueGuiroScraper, "GuiroScraper", "guiro scraper"),
	label.E(BeaterValueHammer, "Hammer"),
	label.E(BeaterValueHand, "Hand"),
	label.As(BeaterValueJazzStick, "JazzStick", "jazz stick"),
	label.As(BeaterValueKnittingNeedle, "KnittingNeedle", "knitting needle"),
	label.As(BeaterValueMetalHammer, "MetalHammer", "metal hammer"),
	label.As(BeaterValueSlideBrushOnGong, "SlideBrushOnGong", "slide brush on gong"),
	label.As(BeaterValueSnareStick, "SnareStick", "snare stick"),
	label.As(BeaterValueSpoonMallet, "SpoonMallet", "spoon mallet"),
	label.E(BeaterValueSuperball, "Superball"),
	label.As(BeaterValueTriangleBeater, "TriangleBeater", "triangle beater"),
	label.As(BeaterValueTriangleBeaterPlain, "TriangleBeaterPlain", "triangle beater plain"),
	label.As(BeaterValueWireBrush, "WireBrush", "wire brush"),
)

func (v BeaterValue) String() string {
	return enum.String(beaterValueLabels, v)
}

func (v BeaterValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(beaterValueLabels, v)
}

func (v *BeaterValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(beaterValueLabels, v, b)
}

// Effect is a sound effect percussion pictogram.
type Effect int

const (
	EffectAnvil Effect = iota
	EffectAutoHorn
	EffectBirdWhistle
	EffectCannon
	EffectDuckCall
	EffectGunShot
	EffectKlaxonHorn
	EffectLionsRoar
	EffectLotusFlute
	EffectMegaphone
	EffectPoliceWhistle
	EffectSiren
	EffectSlideWhistle
	EffectThunderSheet
	EffectWindMachine
	EffectWindWhistle
)

var effectLabels = label.Define("effect", label.Lower,
	label.E(EffectAnvil, "Anvil"),
	label.As(EffectAutoHorn, "AutoHorn", "auto horn"),
	label.As(EffectBirdWhistle, "BirdWhistle", "bird whistle"),
	label.E(EffectCannon, "Cannon"),
	label.As(EffectDuckCall, "DuckCall", "duck call"),
	label.As(EffectGunShot, "GunShot", "gun shot"),
	label.As(EffectKlaxonHorn, "KlaxonHorn", "klaxon horn"),
	label.As(EffectLionsRoar, "LionsRoar", "lions roar"),
	label.As(EffectLotusFlute, "LotusFlute", "lotus flute"),
	label.E(EffectMegaphone, "Megaphone"),
	label.As(EffectPoliceWhistle, "PoliceWhistle", "police whistle"),
	label.E(EffectSiren, "Siren"),
	label.As(EffectSlideWhistle, "SlideWhistle", "slide whistle"),
	label.As(EffectThunderSheet, "ThunderSheet", "thunder sheet"),
	label.As(EffectWindMachine, "WindMachine", "wind machine"),
	label.As(EffectWindWhistle, "WindWhistle", "wind whistle"),
)

func (v Effect) String() string {
	return enum.String(effectLabels, v)
}

func (v Effect) MarshalText() ([]byte, error) {
	return enum.MarshalText(effectLabels, v)
}

func (v *Effect) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(effectLabels, v, b)
}

type Glass int

const (
	GlassGlassHarmonica Glass = iota
	GlassGlassHarp
	GlassWindChimes
)

var glassLabels = label.Define("glass", label.Lower,
	label.As(GlassGlassHarmonica, "GlassHarmonica", "glass harmonica"),
	label.As(GlassGlassHarp, "GlassHarp", "glass harp"),
	label.As(GlassWindChimes, "WindChimes", "wind chimes"),
)

func (v Glass) String() string {
	return enum.String(glassLabels, v)
}

func (v Glass) MarshalText() ([]byte, error) {
	return enum.MarshalText(glassLabels, v)
}

func (v *Glass) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(glassLabels, v, b)
}

type HandbellValue int

const (
	HandbellValueBelltree HandbellValue = iota
	HandbellValueDamp
	HandbellValueEcho
	HandbellValueGyro
	HandbellValueHandMartellato
	HandbellValueMalletLift
	HandbellValueMalletTable
	HandbellValueMartellato
	HandbellValueMartellatoLift
	HandbellValueMutedMartellato
	HandbellValuePluckLift
	HandbellValueSwing
)

var handbellValueLabels = label.Define("handbell-value", label.Lower,
	label.E(HandbellValueBelltree, "Belltree"),
	label.E(HandbellValueDamp, "Damp"),
	label.E(HandbellValueEcho, "Echo"),
	label.E(HandbellValueGyro, "Gyro"),
	label.As(HandbellValueHandMartellato, "HandMartellato", "hand martellato"),
	label.As(HandbellValueMalletLift, "MalletLift", "mallet lift"),
	label.As(HandbellValueMalletTable, "MalletTable", "mallet table"),
	label.E(HandbellValueMartellato, "Martellato"),
	label.As(HandbellValueMartellatoLift, "MartellatoLift", "martellato lift"),
	label.As(HandbellValueMutedMartellato, "MutedMartellato", "muted martellato"),
	label.As(HandbellValuePluckLift, "PluckLift", "pluck lift"),
	label.E(HandbellValueSwing, "Swing"),
)

func (v HandbellValue) String() string {
	return enum.String(handbellValueLabels, v)
}

func (v HandbellValue) MarshalText() ([]byte, error) {
	return enum.MarshalText(handbellValueLabels, v)
}

func (v *HandbellValue) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(handbellValueLabels, v, b)
}

// Membrane is a membrane percussion pictogram.
type Membrane int

const (
	MembraneBassDrum Membrane = iota
	MembraneBassDrumOnSide
	MembraneBongos
	MembraneChineseTomtom
	MembraneCongaDrum
	MembraneCuica
	MembraneGobletDrum
	MembraneIndoAmericanTomtom
	MembraneJapaneseTomtom
	MembraneMilitaryDrum
	MembraneSnareDrum
	MembraneSnareDrumSnaresOff
	MembraneTabla
	MembraneTambourine
	MembraneTenorDrum
	MembraneTimbales
	MembraneTomtom
)

var membraneLabels = label.Define("membrane", label.Lower,
	label.As(MembraneBassDrum, "BassDrum", "bass drum"),
	label.As(MembraneBassDrumOnSide, "BassDrumOnSide", "bass drum on side"),
	label.E(MembraneBongos, "Bongos"),
	label.As(MembraneChineseTomtom, "ChineseTomtom", "Chinese tomtom"),
	label.As(MembraneCongaDrum, "CongaDrum", "conga drum"),
	label.E(MembraneCuica, "Cuica"),
	label.As(MembraneGobletDrum, "GobletDrum", "goblet drum"),
	label.As(MembraneIndoAmericanTomtom, "IndoAmericanTomtom", "Indo-American tomtom"),
	label.As(MembraneJapaneseTomtom, "JapaneseTomtom", "Japanese tomtom"),
	label.As(MembraneMilitaryDrum, "MilitaryDrum", "military drum"),
	label.As(MembraneSnareDrum, "SnareDrum", "snare drum"),
	label.As(MembraneSnareDrumSnaresOff, "SnareDrumSnaresOff", "snare drum snares off"),
	label.E(MembraneTabla, "Tabla"),
	label.E(MembraneTambourine, "Tambourine"),
	label.As(MembraneTenorDrum, "TenorDrum", "tenor drum"),
	label.E(MembraneTimbales, "Timbales"),
	label.E(MembraneTomtom, "Tomtom"),
)

func (v Membrane) String() string {
	return enum.String(membraneLabels, v)
}

func (v Membrane) MarshalText() ([]byte, error) {
	return enum.MarshalText(membraneLabels, v)
}

func (v *Membrane) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(membraneLabels, v, b)
}

// Metal is a metallic percussion pictogram.
type Metal int

const (
	MetalAgogo Metal = iota
	MetalAlmglocken
	MetalBell
	MetalBellPlate
	MetalBellTree
	MetalBrakeDrum
	MetalCencerro
	MetalChainRattle
	MetalChineseCymbal
	MetalCowbell
	MetalCrashCymbals
	MetalCrotale
	MetalCymbalTongs
	MetalDomedGong
	MetalFingerCymbals
	MetalFlexatone
	MetalGong
	MetalHiHat
	MetalHighHatCymbals
	MetalHandbell
	MetalJawHarp
	MetalJingleBells
	MetalMusicalSaw
	MetalShellBells
	MetalSistrum
	MetalSizzleCymbal
	MetalSleighBells
	MetalSuspendedCymbal
	MetalTamTam
	MetalTamTamWithBeater
	MetalTriangle
	MetalVietnameseHat
)

var metalLabels = label.Define("metal", label.Kebab,
	label.E(MetalAgogo, "Agogo"),
	label.E(MetalAlmglocken, "Almglocken"),
	label.E(MetalBell, "Bell"),
	label.As(MetalBellPlate, "BellPlate", "bell plate"),
	label.As(MetalBellTree, "BellTree", "bell tree"),
	label.As(MetalBrakeDrum, "BrakeDrum", "brake drum"),
	label.E(MetalCencerro, "Cencerro"),
	label.As(MetalChainRattle, "ChainRattle", "chain rattle"),
	label.As(MetalChineseCymbal, "ChineseCymbal", "Chinese cymbal"),
	label.E(MetalCowbell, "Cowbell"),
	label.As(MetalCrashCymbals, "CrashCymbals", "crash cymbals"),
	label.E(MetalCrotale, "Crotale"),
	label.As(MetalCymbalTongs, "CymbalTongs", "cymbal tongs"),
	label.As(MetalDomedGong, "DomedGong", "domed gong"),
	label.As(MetalFingerCymbals, "FingerCymbals", "finger cymbals"),
	label.E(MetalFlexatone, "Flexatone"),
	label.E(MetalGong, "Gong"),
	label.E(MetalHiHat, "HiHat"),
	label.As(MetalHighHatCymbals, "HighHatCymbals", "high-hat cymbals"),
	label.E(MetalHandbell, "Handbell"),
	label.As(MetalJawHarp, "JawHarp", "jaw harp"),
	label.As(MetalJingleBells, "JingleBells", "jingle bells"),
	label.As(MetalMusicalSaw, "MusicalSaw", "musical saw"),
	label.As(MetalShellBells, "ShellBells", "shell bells"),
	label.E(MetalSistrum, "Sistrum"),
	label.As(MetalSizzleCymbal, "SizzleCymbal", "sizzle cymbal"),
	label.As(MetalSleighBells, "SleighBells", "sleigh bells"),
	label.As(MetalSuspendedCymbal, "SuspendedCymbal", "suspended cymbal"),
	label.As(MetalTamTam, "TamTam", "tam tam"),
	label.As(MetalTamTamWithBeater, "TamTamWithBeater", "tam tam with beater"),
	label.E(MetalTriangle, "Triangle"),
	label.As(MetalVietnameseHat, "VietnameseHat", "Vietnamese hat"),
)

func (v Metal) String() string {
	return enum.String(metalLabels, v)
}

func (v Metal) MarshalText() ([]byte, error) {
	return enum.MarshalText(metalLabels, v)
}

func (v *Metal) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(metalLabels, v, b)
}

// Pitched is a pitched percussion pictogram.
type Pitched int

const (
	PitchedCelesta Pitched = iota
	PitchedChimes
	PitchedGlockenspiel
	PitchedLithophone
	PitchedMallet
	PitchedMarimba
	PitchedSteelDrums
	PitchedTubaphone
	PitchedTubularChimes
	PitchedVibraphone
	PitchedXylophone
)

var pitchedLabels = label.Define("pitched", label.Lower,
	label.E(PitchedCelesta, "Celesta"),
	label.E(PitchedChimes, "Chimes"),
	label.E(PitchedGlockenspiel, "Glockenspiel"),
	label.E(PitchedLithophone, "Lithophone"),
	label.E(PitchedMallet, "Mallet"),
	label.E(PitchedMarimba, "Marimba"),
	label.As(PitchedSteelDrums, "SteelDrums", "steel drums"),
	label.E(PitchedTubaphone, "Tubaphone"),
	label.As(PitchedTubularChimes, "TubularChimes", "tubular chimes"),
	label.E(PitchedVibraphone, "Vibraphone"),
	label.E(PitchedXylophone, "Xylophone"),
)

func (v Pitched) String() string {
	return enum.String(pitchedLabels, v)
}

func (v Pitched) MarshalText() ([]byte, error) {
	return enum.MarshalText(pitchedLabels, v)
}

func (v *Pitched) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(pitchedLabels, v, b)
}

type SemiPitched int

const (
	SemiPitchedHigh SemiPitched = iota
	SemiPitchedMediumHigh
	SemiPitchedMedium
	SemiPitchedMediumLow
	SemiPitchedLow
	SemiPitchedVeryLow
)

var semiPitchedLabels = label.Define("semi-pitched", label.Kebab,
	label.E(SemiPitchedHigh, "High"),
	label.E(SemiPitchedMediumHigh, "MediumHigh"),
	label.E(SemiPitchedMedium, "Medium"),
	label.E(SemiPitchedMediumLow, "MediumLow"),
	label.E(SemiPitchedLow, "Low"),
	label.E(SemiPitchedVeryLow, "VeryLow"),
)

func (v SemiPitched) String() string {
	return enum.String(semiPitchedLabels, v)
}

func (v SemiPitched) MarshalText() ([]byte, error) {
	return enum.MarshalText(semiPitchedLabels, v)
}

func (v *SemiPitched) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(semiPitchedLabels, v, b)
}

type StickLocation int

const (
	StickLocationCenter StickLocation = iota
	StickLocationRim
	StickLocationCymbalBell
	StickLocationCymbalEdge
)

var stickLocationLabels = label.Define("stick-location", label.Lower,
	label.E(StickLocationCenter, "Center"),
	label.E(StickLocationRim, "Rim"),
	label.As(StickLocationCymbalBell, "CymbalBell", "cymbal bell"),
	label.As(StickLocationCymbalEdge, "CymbalEdge", "cymbal edge"),
)

func (v StickLocation) String() string {
	return enum.String(stickLocationLabels, v)
}

func (v StickLocation) MarshalText() ([]byte, error) {
	return enum.MarshalText(stickLocationLabels, v)
}

func (v *StickLocation) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(stickLocationLabels, v, b)
}

type StickMaterial int

const (
	StickMaterialSoft StickMaterial = iota
	StickMaterialMedium
	StickMaterialHard
	StickMaterialShaded
	StickMaterialX
)

var stickMaterialLabels = label.Define("stick-material", label.Lower,
	label.E(StickMaterialSoft, "Soft"),
	label.E(StickMaterialMedium, "Medium"),
	label.E(StickMaterialHard, "Hard"),
	label.E(StickMaterialShaded, "Shaded"),
	label.E(StickMaterialX, "X"),
)

func (v StickMaterial) String() string {
	return enum.String(stickMaterialLabels, v)
}

func (v StickMaterial) MarshalText() ([]byte, error) {
	return enum.MarshalText(stickMaterialLabels, v)
}

func (v *StickMaterial) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(stickMaterialLabels, v, b)
}

type StickType int

const (
	StickTypeBassDrum StickType = iota
	StickTypeDoubleBassDrum
	StickTypeGlockenspiel
	StickTypeGum
	StickTypeHammer
	StickTypeSuperball
	StickTypeTimpani
	StickTypeWound
	StickTypeXylophone
	StickTypeYarn
)

var stickTypeLabels = label.Define("stick-type", label.Lower,
	label.As(StickTypeBassDrum, "BassDrum", "bass drum"),
	label.As(StickTypeDoubleBassDrum, "DoubleBassDrum", "double bass drum"),
	label.E(StickTypeGlockenspiel, "Glockenspiel"),
	label.E(StickTypeGum, "Gum"),
	label.E(StickTypeHammer, "Hammer"),
	label.E(StickTypeSuperball, "Superball"),
	label.E(StickTypeTimpani, "Timpani"),
	label.E(StickTypeWound, "Wound"),
	label.E(StickTypeXylophone, "Xylophone"),
	label.E(StickTypeYarn, "Yarn"),
)

func (v StickType) String() string {
	return enum.String(stickTypeLabels, v)
}

func (v StickType) MarshalText() ([]byte, error) {
	return enum.MarshalText(stickTypeLabels, v)
}

func (v *StickType) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(stickTypeLabels, v, b)
}

// Wood is a wooden percussion pictogram.
type Wood int

const (
	WoodBambooScraper Wood = iota
	WoodBoardClapper
	WoodCabasa
	WoodCastanets
	WoodCastanetsWithHandle
	WoodClaves
	WoodFootballRattle
	WoodGuiro
	WoodLogDrum
	WoodMaraca
	WoodMaracas
	WoodQuijada
	WoodRainstick
	WoodRatchet
	WoodRecoReco
	WoodSandpaperBlocks
	WoodSlitDrum
	WoodTempleBlock
	WoodVibraslap
	WoodWhip
	WoodWoodBlock
)

var woodLabels = label.Define("wood", label.Lower,
	label.As(WoodBambooScraper, "BambooScraper", "bamboo scraper"),
	label.As(WoodBoardClapper, "BoardClapper", "board clapper"),
	label.E(WoodCabasa, "Cabasa"),
	label.E(WoodCastanets, "Castanets"),
	label.As(WoodCastanetsWithHandle, "CastanetsWithHandle", "castanets with handle"),
	label.E(WoodClaves, "Claves"),
	label.As(WoodFootballRattle, "FootballRattle", "football rattle"),
	label.E(WoodGuiro, "Guiro"),
	label.As(WoodLogDrum, "LogDrum", "log drum"),
	label.E(WoodMaraca, "Maraca"),
	label.E(WoodMaracas, "Maracas"),
	label.E(WoodQuijada, "Quijada"),
	label.E(WoodRainstick, "Rainstick"),
	label.E(WoodRatchet, "Ratchet"),
	label.As(WoodRecoReco, "RecoReco", "reco-reco"),
	label.As(WoodSandpaperBlocks, "SandpaperBlocks", "sandpaper blocks"),
	label.As(WoodSlitDrum, "SlitDrum", "slit drum"),
	label.As(WoodTempleBlock, "TempleBlock", "temple block"),
	label.E(WoodVibraslap, "Vibraslap"),
	label.E(WoodWhip, "Whip"),
	label.As(WoodWoodBlock, "WoodBlock", "wood block"),
)

func (v Wood) String() string {
	return enum.String(woodLabels, v)
}

func (v Wood) MarshalText() ([]byte, error) {
	return enum.MarshalText(woodLabels, v)
}

func (v *Wood) UnmarshalText(b []byte) error {
	return enum.UnmarshalText(woodLabels, v, b)
}
