package resource

import "github.com/enescakir/emoji"

// player facing texts
var (
	TextWelcomeMsg    = "Welcome to Color Party! Use 'Start' to begin, or 'Exit' to leave."
	TextSpectatingMsg = emoji.Stopwatch.String() + " A game is in progress, you are spectating until it ends."
	TextExitedMsg     = "You have exited the Color Party minigame."

	TextStartingNormalMsg = emoji.Rocket.String() + " Starting Normal Mode!"
	TextStartingCrazyMsg  = emoji.Fire.String() + " Starting Crazy Mode!"
	TextStartingInMsg     = "Starting in %d..."
	TextGoMsg             = emoji.ChequeredFlag.String() + " Go!"

	TextRoundMsg            = "Round %d/%d"
	TextPowerupsSpawnedMsg  = emoji.GemStone.String() + " Powerups have spawned!"
	TextRoundTimeSecondMsg  = emoji.Stopwatch.String() + " Round time reduced to %d second!"
	TextRoundTimeSecondsMsg = emoji.Stopwatch.String() + " Round time reduced to %d seconds!"
	TextFreezeTickMsg       = "%d..."
	TextFreezeMsg           = "FREEZE!"

	TextFellMsg          = "%s fell to their death!"
	TextLastStandingMsg  = "%s is the last player standing!"
	TextContinueAloneMsg = "They will continue alone until they fall (or we reach 25 rounds)..."
	TextWinnersMsg       = emoji.Trophy.String() + " %s"
	TextRejoinMsg        = "All players must exit and rejoin to reset the game."

	TextLeapAxeGrantMsg        = "%s got a Leap Axe!"
	TextColorCowGrantMsg       = "%s unleashed a Color Cow!"
	TextJumpPotionGrantMsg     = "%s got a Jump Potion!"
	TextSpeedPotionGrantMsg    = "%s got a Speed Potion!"
	TextColorTrailGrantMsg     = "%s got a Color Trail!"
	TextTeleportClockGrantMsg  = "%s got a Teleport clock!"
	TextRandomTeleportGrantMsg = "%s was teleported!"
	TextStarveGrantMsg         = "%s has been Starved!"
	TextMagicCarpetGrantMsg    = "%s got a Magic Carpet!"

	TextRandomTeleportMsg = "Teleported to a random tile!"
	TextSafeTeleportMsg   = "Teleported to a safe tile!"
	TextNoSafeTileMsg     = "No safe tile found to teleport!"
)
