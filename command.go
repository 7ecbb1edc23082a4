package kit

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
)

// Command returns the /stash command, which lets players save their
// inventory under a name and load it back:
//
//	/stash save <name>
//	/stash load <name>
//	/stash list
//
// Register it with cmd.Register. Only players may run it.
func Command(s *Stash) cmd.Command {
	return cmd.New("stash", "Saves and loads inventories.", nil,
		stashSave{stash: s},
		stashLoad{stash: s},
		stashList{stash: s},
	)
}

// inventoryKey is the stash key inventories saved by command are stored
// under.
func inventoryKey(name string) string {
	return "inventory/" + strings.ToLower(name)
}

// commandPlayer extracts the player from a command source.
// Returns nil if the source is not a player.
func commandPlayer(src cmd.Source) *player.Player {
	p, ok := src.(*player.Player)
	if !ok {
		return nil
	}
	return p
}

type playerOnly struct{}

// Allow only lets players run the command.
func (playerOnly) Allow(src cmd.Source) bool {
	return commandPlayer(src) != nil
}

type stashSave struct {
	playerOnly
	stash *Stash

	Save cmd.SubCommand `cmd:"save"`
	Name string         `cmd:"name"`
}

func (c stashSave) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p := commandPlayer(src)
	if p == nil {
		o.Error("Player-only command")
		return
	}
	if err := c.stash.PutInventory(inventoryKey(c.Name), p.Inventory()); err != nil {
		slog.Warn("kit: save inventory failed", "player", p.Name(), "name", c.Name, "error", err)
		o.Errorf("Could not save inventory %q.", c.Name)
		return
	}
	o.Printf("Saved inventory %q.", c.Name)
}

type stashLoad struct {
	playerOnly
	stash *Stash

	Load cmd.SubCommand `cmd:"load"`
	Name string         `cmd:"name"`
}

func (c stashLoad) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p := commandPlayer(src)
	if p == nil {
		o.Error("Player-only command")
		return
	}
	err := c.stash.RestoreInventory(inventoryKey(c.Name), p.Inventory())
	switch {
	case errors.Is(err, ErrNotFound):
		o.Errorf("No inventory named %q.", c.Name)
	case err != nil:
		slog.Warn("kit: load inventory failed", "player", p.Name(), "name", c.Name, "error", err)
		o.Errorf("Could not load inventory %q.", c.Name)
	default:
		o.Printf("Loaded inventory %q.", c.Name)
	}
}

type stashList struct {
	playerOnly
	stash *Stash

	List cmd.SubCommand `cmd:"list"`
}

func (c stashList) Run(_ cmd.Source, o *cmd.Output, _ *world.Tx) {
	names := inventoryNames(c.stash.Keys())
	if len(names) == 0 {
		o.Print("No saved inventories.")
		return
	}
	o.Printf("Saved inventories: %s", strings.Join(names, ", "))
}

func inventoryNames(keys []string) []string {
	var names []string
	for _, k := range keys {
		if name, ok := strings.CutPrefix(k, "inventory/"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
