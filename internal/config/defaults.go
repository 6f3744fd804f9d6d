package config

const (
	defaultDataDir            = "~/.local/share/lisztnup"
	defaultLogDir             = "~/.local/share/lisztnup/logs"
	defaultInputFileName      = "musicbrainz.json"
	defaultOutputFileName     = "lisztnup.json"
	defaultUnresolvedLogName  = "unresolved_types.txt"
	defaultExcludedTracksName = "excluded_deezer_ids"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"

	defaultMinWorksPerComposer  = 2
	defaultMinBirthYear         = 1400
	defaultMinRecordingsPerPart = 3
	defaultMinimumWSS           = 2.3
	defaultMaxTreeDepth         = 32

	defaultAlpha               = 0.5
	defaultWSSUpperBound       = 6.0
	defaultPartScoreAtLowerWSS = 95
	defaultPartScoreAtUpperWSS = 75

	defaultMaxTracksPerPart = 5
)

// Default returns a Config populated with repository defaults. The exclusion
// lists and overrides carry the curator tables the catalog ships with; a
// config file replaces them wholesale rather than merging.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Filters: Filters{
			MinWorksPerComposer:  defaultMinWorksPerComposer,
			MinBirthYear:         defaultMinBirthYear,
			MinRecordingsPerPart: defaultMinRecordingsPerPart,
			MinimumWSS:           defaultMinimumWSS,
			MaxTreeDepth:         defaultMaxTreeDepth,
		},
		Scoring: Scoring{
			Alpha:               defaultAlpha,
			WSSLowerBound:       defaultMinimumWSS,
			WSSUpperBound:       defaultWSSUpperBound,
			PartScoreAtLowerWSS: defaultPartScoreAtLowerWSS,
			PartScoreAtUpperWSS: defaultPartScoreAtUpperWSS,
		},
		Tracks: Tracks{
			MaxPerPart: defaultMaxTracksPerPart,
			LabelPreference: []string{
				"Deutsche Grammophon",
				"EMI",
				"Decca",
				"Hyperion",
				"Chandos",
				"Universal",
				"Philips",
			},
		},
		Exclusions: Exclusions{
			Composers: defaultExcludedComposers(),
			Works:     defaultExcludedWorks(),
		},
		Overrides: Overrides{
			WSS:           defaultWSSOverrides(),
			ComposerTypes: defaultComposerTypeOverrides(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// defaultExcludedComposers lists composers present in the source extract whose
// repertoire falls outside the catalog (jazz, rock, film, seasonal one-offs).
func defaultExcludedComposers() []string {
	return []string{
		"Gruber, Franz Xaver",
		"Pierpont, James Lord",
		"Ellington, Duke",
		"Coltrane, John",
		"Tizol, Juan",
		"Gilmour, David",
		"Mason, Nick",
		"Waters, Roger",
		"Wright, Richard",
		"Young, Neil",
		"McLaughlin, John",
		"Townshend, Pete",
		"Wakeman, Rick",
		"Gardel, Carlos",
		"Vangelis",
		"Morricone, Ennio",
		"Emerson, Keith",
		"Strayhorn, Billy",
		"Ibrahim, Abdullah",
		"Cherry, Don",
		"Cale, John",
		"Handy, William Christopher",
		"Johnson, James P.",
		"Anderson, Leroy",
		"Goldsmith, Jerry",
		"Newman, Randy",
		"Jarre, Maurice",
		"Mills, Irving",
		"Foster, Stephen",
		"Willis, Wallace",
	}
}

func defaultExcludedWorks() []string {
	return []string{
		"bf57c435-6ce0-3d57-ab04-e2a9179b178c", // O Holy Night
		"8531b357-339e-3cc7-9ed2-0d6b928ed12e", // Joy to the World
		"bc0cdd41-eaa3-3330-b972-8e8174b9e64d", // Hark! The Herald Angels Sing
		"718b96fa-75eb-436e-8c30-0c647aa99696", // Ave Maria (duplicate)
	}
}

// defaultWSSOverrides corrects works whose computed score misjudges true
// popularity.
func defaultWSSOverrides() map[string]float64 {
	return map[string]float64{
		"11f48c5e-5ee9-4646-9826-fb7c2fccce7f": 5.4, // Swan Lake
		"bcc558d9-b9d5-39cd-b599-df5a988b9eee": 2.5, // Memories of the Alhambra
		"300dc2e7-fd2c-48c5-bbdc-29553afa56da": 3.5, // La paloma
		"15649d4e-2dd2-4211-84bc-f5d2d316203a": 4.0, // Messe solennelle en la majeur, op. 12
	}
}

func defaultComposerTypeOverrides() map[string]string {
	return map[string]string{
		"09ff1fe8-d61c-4b98-bb82-18487c74d7b7": "piano", // Chopin
	}
}
