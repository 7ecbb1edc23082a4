package particle

import "github.com/oriumgames/kit/mcver"

// Particles of the catalogue, oldest release first.
const (
	Unknown Particle = iota
	Barrier
	BlockCrack
	BlockDust
	Cloud
	Crit
	CritMagic
	DripLava
	DripWater
	EnchantmentTable
	ExplosionHuge
	ExplosionLarge
	ExplosionNormal
	FireworksSpark
	Flame
	Footstep
	Heart
	ItemCrack
	ItemTake
	Lava
	MobAppearance
	Note
	Portal
	Redstone
	Slime
	SmokeLarge
	SmokeNormal
	Snowball
	SnowShovel
	Spell
	SpellInstant
	SpellMob
	SpellMobAmbient
	SpellWitch
	Suspended
	SuspendedDepth
	TownAura
	VillagerAngry
	VillagerHappy
	WaterBubble
	WaterDrop
	WaterSplash
	WaterWake
	DamageIndicator
	DragonBreath
	EndRod
	SweepAttack
	FallingDust
	Spit
	Totem
	BubbleColumnUp
	BubblePop
	CurrentDown
	Dolphin
	LegacyBlockCrack
	LegacyBlockDust
	LegacyFallingDust
	Nautilus
	SquidInk
	CampfireCosySmoke
	CampfireSignalSmoke
	Composter
	FallingLava
	FallingWater
	Flash
	LandingLava
	Sneeze
	DrippingHoney
	FallingHoney
	FallingNectar
	LandingHoney
	Ash
	CrimsonSpore
	DrippingObsidianTear
	FallingObsidianTear
	LandingObsidianTear
	ReversePortal
	Soul
	SoulFireFlame
	WarpedSpore
	Light
	DustColorTransition
	Vibration
	FallingSporeBlossom
	SporeBlossomAir
	SmallFlame
	Snowflake
	DrippingDripstoneLava
	FallingDripstoneLava
	DrippingDripstoneWater
	FallingDripstoneWater
	GlowSquidInk
	Glow
	WaxOn
	WaxOff
	ElectricSpark
	Scrape
	WhiteAsh
	SonicBoom
	SculkSoul
	SculkCharge
	SculkChargePop
	Shriek
	BlockMarker
	DrippingCherryLeaves
	FallingCherryLeaves
	LandingCherryLeaves

	particleCount
)

var catalogue = [particleCount]info{
	Unknown:                {key: "unknown", id: -1},
	Barrier:                {key: "barrier", legacy: "barrier", id: 35, since: mcver.V1_8_R3},
	BlockCrack:             {key: "block_crack", legacy: "tilecrack_", id: 37, data: true, since: mcver.V1_8_R3},
	BlockDust:              {key: "block_dust", legacy: "blockdust_", id: 38, data: true, since: mcver.V1_8_R3},
	Cloud:                  {key: "cloud", legacy: "cloud", id: 29, since: mcver.V1_8_R3},
	Crit:                   {key: "crit", legacy: "crit", id: 9, since: mcver.V1_8_R3},
	CritMagic:              {key: "crit_magic", legacy: "magicCrit", id: 10, since: mcver.V1_8_R3},
	DripLava:               {key: "drip_lava", legacy: "dripLava", id: 19, since: mcver.V1_8_R3},
	DripWater:              {key: "drip_water", legacy: "dripWater", id: 18, since: mcver.V1_8_R3},
	EnchantmentTable:       {key: "enchantment_table", legacy: "enchantmenttable", id: 25, since: mcver.V1_8_R3},
	ExplosionHuge:          {key: "explosion_huge", legacy: "hugeexplosion", id: 2, since: mcver.V1_8_R3},
	ExplosionLarge:         {key: "explosion_large", legacy: "largeexplode", id: 1, since: mcver.V1_8_R3},
	ExplosionNormal:        {key: "explosion_normal", legacy: "explode", id: 0, since: mcver.V1_8_R3},
	FireworksSpark:         {key: "fireworks_spark", legacy: "fireworksSpark", id: 3, since: mcver.V1_8_R3},
	Flame:                  {key: "flame", legacy: "flame", id: 26, since: mcver.V1_8_R3},
	Footstep:               {key: "footstep", legacy: "footstep", id: 28, since: mcver.V1_8_R3, until: mcver.V1_12_R1},
	Heart:                  {key: "heart", legacy: "heart", id: 34, since: mcver.V1_8_R3},
	ItemCrack:              {key: "item_crack", legacy: "iconcrack_", id: 36, data: true, since: mcver.V1_8_R3},
	ItemTake:               {key: "item_take", legacy: "take", id: 40, since: mcver.V1_8_R3, until: mcver.V1_12_R1},
	Lava:                   {key: "lava", legacy: "lava", id: 27, since: mcver.V1_8_R3},
	MobAppearance:          {key: "mob_appearance", legacy: "mobappearance", id: 41, since: mcver.V1_8_R3},
	Note:                   {key: "note", legacy: "note", id: 23, since: mcver.V1_8_R3},
	Portal:                 {key: "portal", legacy: "portal", id: 24, since: mcver.V1_8_R3},
	Redstone:               {key: "redstone", legacy: "reddust", id: 30, data: true, since: mcver.V1_8_R3},
	Slime:                  {key: "slime", legacy: "slime", id: 33, since: mcver.V1_8_R3},
	SmokeLarge:             {key: "smoke_large", legacy: "largesmoke", id: 12, since: mcver.V1_8_R3},
	SmokeNormal:            {key: "smoke_normal", legacy: "smoke", id: 11, since: mcver.V1_8_R3},
	Snowball:               {key: "snowball", legacy: "snowballpoof", id: 31, since: mcver.V1_8_R3},
	SnowShovel:             {key: "snow_shovel", legacy: "snowshovel", id: 32, since: mcver.V1_8_R3},
	Spell:                  {key: "spell", legacy: "spell", id: 13, since: mcver.V1_8_R3},
	SpellInstant:           {key: "spell_instant", legacy: "instantSpell", id: 14, since: mcver.V1_8_R3},
	SpellMob:               {key: "spell_mob", legacy: "mobSpell", id: 15, since: mcver.V1_8_R3},
	SpellMobAmbient:        {key: "spell_mob_ambient", legacy: "mobSpellAmbient", id: 16, since: mcver.V1_8_R3},
	SpellWitch:             {key: "spell_witch", legacy: "witchMagic", id: 17, since: mcver.V1_8_R3},
	Suspended:              {key: "suspended", legacy: "suspended", id: 7, since: mcver.V1_8_R3},
	SuspendedDepth:         {key: "suspended_depth", legacy: "depthsuspend", id: 8, since: mcver.V1_8_R3},
	TownAura:               {key: "town_aura", legacy: "townaura", id: 22, since: mcver.V1_8_R3},
	VillagerAngry:          {key: "villager_angry", legacy: "angryVillager", id: 20, since: mcver.V1_8_R3},
	VillagerHappy:          {key: "villager_happy", legacy: "happyVillager", id: 21, since: mcver.V1_8_R3},
	WaterBubble:            {key: "water_bubble", legacy: "bubble", id: 4, since: mcver.V1_8_R3},
	WaterDrop:              {key: "water_drop", legacy: "droplet", id: 39, since: mcver.V1_8_R3},
	WaterSplash:            {key: "water_splash", legacy: "splash", id: 5, since: mcver.V1_8_R3},
	WaterWake:              {key: "water_wake", legacy: "wake", id: 6, since: mcver.V1_8_R3},
	DamageIndicator:        {key: "damage_indicator", id: -1, since: mcver.V1_9_R1},
	DragonBreath:           {key: "dragon_breath", id: -1, since: mcver.V1_9_R1},
	EndRod:                 {key: "end_rod", id: -1, since: mcver.V1_9_R1},
	SweepAttack:            {key: "sweep_attack", id: -1, since: mcver.V1_9_R1},
	FallingDust:            {key: "falling_dust", legacy: "fallingdust", id: -1, data: true, since: mcver.V1_11_R1},
	Spit:                   {key: "spit", legacy: "spit", id: -1, since: mcver.V1_11_R1},
	Totem:                  {key: "totem", legacy: "totem", id: -1, since: mcver.V1_11_R1},
	BubbleColumnUp:         {key: "bubble_column_up", id: -1, since: mcver.V1_13_R1},
	BubblePop:              {key: "bubble_pop", id: -1, since: mcver.V1_13_R1},
	CurrentDown:            {key: "current_down", id: -1, since: mcver.V1_13_R1},
	Dolphin:                {key: "dolphin", id: -1, since: mcver.V1_13_R1},
	LegacyBlockCrack:       {key: "legacy_block_crack", legacy: "legacy_block_crack", id: -1, data: true, since: mcver.V1_13_R1},
	LegacyBlockDust:        {key: "legacy_block_dust", legacy: "legacy_block_dust", id: -1, data: true, since: mcver.V1_13_R1},
	LegacyFallingDust:      {key: "legacy_falling_dust", legacy: "legacy_falling_dust", id: -1, data: true, since: mcver.V1_13_R1},
	Nautilus:               {key: "nautilus", id: -1, since: mcver.V1_13_R1},
	SquidInk:               {key: "squid_ink", id: -1, since: mcver.V1_13_R1},
	CampfireCosySmoke:      {key: "campfire_cosy_smoke", id: -1, since: mcver.V1_14_R1},
	CampfireSignalSmoke:    {key: "campfire_signal_smoke", id: -1, since: mcver.V1_14_R1},
	Composter:              {key: "composter", id: -1, since: mcver.V1_14_R1},
	FallingLava:            {key: "falling_lava", id: -1, since: mcver.V1_14_R1},
	FallingWater:           {key: "falling_water", id: -1, since: mcver.V1_14_R1},
	Flash:                  {key: "flash", id: -1, since: mcver.V1_14_R1},
	LandingLava:            {key: "landing_lava", id: -1, since: mcver.V1_14_R1},
	Sneeze:                 {key: "sneeze", id: -1, since: mcver.V1_14_R1},
	DrippingHoney:          {key: "dripping_honey", id: -1, since: mcver.V1_15_R1},
	FallingHoney:           {key: "falling_honey", id: -1, since: mcver.V1_15_R1},
	FallingNectar:          {key: "falling_nectar", id: -1, since: mcver.V1_15_R1},
	LandingHoney:           {key: "landing_honey", id: -1, since: mcver.V1_15_R1},
	Ash:                    {key: "ash", id: -1, since: mcver.V1_16_R1},
	CrimsonSpore:           {key: "crimson_spore", id: -1, since: mcver.V1_16_R1},
	DrippingObsidianTear:   {key: "dripping_obsidian_tear", id: -1, since: mcver.V1_16_R1},
	FallingObsidianTear:    {key: "falling_obsidian_tear", id: -1, since: mcver.V1_16_R1},
	LandingObsidianTear:    {key: "landing_obsidian_tear", id: -1, since: mcver.V1_16_R1},
	ReversePortal:          {key: "reverse_portal", id: -1, since: mcver.V1_16_R1},
	Soul:                   {key: "soul", id: -1, since: mcver.V1_16_R1},
	SoulFireFlame:          {key: "soul_fire_flame", id: -1, since: mcver.V1_16_R1},
	WarpedSpore:            {key: "warped_spore", id: -1, since: mcver.V1_16_R1},
	Light:                  {key: "light", id: -1, since: mcver.V1_17},
	DustColorTransition:    {key: "dust_color_transition", id: -1, data: true, since: mcver.V1_17},
	Vibration:              {key: "vibration", id: -1, since: mcver.V1_17},
	FallingSporeBlossom:    {key: "falling_spore_blossom", id: -1, since: mcver.V1_17},
	SporeBlossomAir:        {key: "spore_blossom_air", id: -1, since: mcver.V1_17},
	SmallFlame:             {key: "small_flame", id: -1, since: mcver.V1_17},
	Snowflake:              {key: "snowflake", id: -1, since: mcver.V1_17},
	DrippingDripstoneLava:  {key: "dripping_dripstone_lava", id: -1, since: mcver.V1_17},
	FallingDripstoneLava:   {key: "falling_dripstone_lava", id: -1, since: mcver.V1_17},
	DrippingDripstoneWater: {key: "dripping_dripstone_water", id: -1, since: mcver.V1_17},
	FallingDripstoneWater:  {key: "falling_dripstone_water", id: -1, since: mcver.V1_17},
	GlowSquidInk:           {key: "glow_squid_ink", id: -1, since: mcver.V1_17},
	Glow:                   {key: "glow", id: -1, since: mcver.V1_17},
	WaxOn:                  {key: "wax_on", id: -1, since: mcver.V1_17},
	WaxOff:                 {key: "wax_off", id: -1, since: mcver.V1_17},
	ElectricSpark:          {key: "electric_spark", id: -1, since: mcver.V1_17},
	Scrape:                 {key: "scrape", id: -1, since: mcver.V1_17},
	WhiteAsh:               {key: "white_ash", id: -1, since: mcver.V1_19},
	SonicBoom:              {key: "sonic_boom", id: -1, since: mcver.V1_19},
	SculkSoul:              {key: "sculk_soul", id: -1, since: mcver.V1_19},
	SculkCharge:            {key: "sculk_charge", id: -1, since: mcver.V1_19},
	SculkChargePop:         {key: "sculk_charge_pop", id: -1, since: mcver.V1_19},
	Shriek:                 {key: "shriek", id: -1, since: mcver.V1_19},
	BlockMarker:            {key: "block_marker", id: -1, data: true, since: mcver.V1_19},
	DrippingCherryLeaves:   {key: "dripping_cherry_leaves", id: -1, since: mcver.V1_19_4},
	FallingCherryLeaves:    {key: "falling_cherry_leaves", id: -1, since: mcver.V1_19_4},
	LandingCherryLeaves:    {key: "landing_cherry_leaves", id: -1, since: mcver.V1_19_4},
}
