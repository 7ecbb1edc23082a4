// Package kit stores Dragonfly items and inventories in JSON files, using the
// storage tag tree of package tag.
//
// Kit is a set of packages:
//   - tag: an NBT-like tag tree, its suffix-tagged JSON form, SNBT and binary NBT
//   - jsonval: an order-preserving JSON value model
//   - files: JSON files with defaults, for plugin configuration and data
//   - item: conversion of item stacks to and from tags, plus head metadata
//   - mcver, particle: version and particle catalogues
//
// This package ties them together with a Stash, a named store of items and
// inventories backed by a files.File.
//
// # Quick Start
//
//	f, err := files.Open("plugins/kits/stash.json")
//	if err != nil {
//	    return err
//	}
//	stash := kit.NewStash(f)
//	cmd.Register(kit.Command(stash))
//
//	for p := range srv.Accept() {
//	    if err := stash.RestoreInventory("join/"+p.Name(), p.Inventory()); err != nil {
//	        slog.Warn("restore inventory", "player", p.Name(), "error", err)
//	    }
//	}
//
// # Stored Form
//
// Every entry is a JSON object in the suffix-tagged form of tag.EncodeJSON,
// so stash files stay readable and editable by hand:
//
//	{
//	  "starter": {
//	    "0": {"Count": 1, "Name": "minecraft:diamond_sword", "Damage": 0, "tag": {...}},
//	    "8": {"Count": 16, "Name": "minecraft:bread", "Damage": 0}
//	  }
//	}
package kit

// Version is the version of the kit module.
const Version = "0.1.0"
