package scenario

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a TMX map
const (
	GroupCarriers = "Carriers"
	GroupUnits    = "Units"
	GroupFighters = "Fighters"
	GroupEnemies  = "Enemies"
)

// SpawnError describes an invalid spawn in a scenario.
type SpawnError struct {
	Group  string
	Index  int
	Reason string
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Group, e.Index, e.Reason)
}

// Load parses a TMX file into a Scenario. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Carriers without a "fighters" property get
// defaultFighters.
func Load(fsys fs.FS, tmxPath string, defaultFighters int) (*Scenario, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	s := &Scenario{
		Name:      stem(tmxPath),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupCarriers:
				s.Carriers = append(s.Carriers, CarrierSpawn{
					X:        o.X,
					Y:        o.Y,
					Rotation: o.Properties.GetFloat("rotation"),
					Fighters: fighterLoadout(o.Properties, defaultFighters),
				})
			case GroupUnits:
				s.Units = append(s.Units, Spawn{X: o.X, Y: o.Y})
			case GroupFighters:
				s.Fighters = append(s.Fighters, Spawn{X: o.X, Y: o.Y})
			case GroupEnemies:
				s.Enemies = append(s.Enemies, Spawn{X: o.X, Y: o.Y})
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", tmxPath, err)
	}
	return s, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns the
// scenarios keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string, defaultFighters int) (map[string]*Scenario, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenarios := make(map[string]*Scenario, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		s, err := Load(fsys, match, defaultFighters)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		scenarios[s.Name] = s
		names = append(names, s.Name)
	}

	sort.Strings(names)
	return scenarios, names, nil
}

// fighterLoadout reads a carrier's "fighters" int property. An absent
// property means def; an explicit 0 is an empty hangar.
func fighterLoadout(props tiled.Properties, def int) int {
	if len(props.Get("fighters")) == 0 {
		return def
	}
	return props.GetInt("fighters")
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), ".tmx")
}
