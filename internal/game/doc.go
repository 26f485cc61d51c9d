// Package game implements the core table logic for a multi-round Texas
// Hold'em game between human and automated seats.
//
// The main types are:
//   - HandState: the shared betting state for one hand (pot, current bet,
//     staged community cards, action history)
//   - BettingRound: drives one pass of the turn queue, applying each seat's
//     decision to the hand state
//   - Roster: the owned player collection, handling elimination and the
//     stable chip-count re-sort between hands
//   - Game: the hand-by-hand loop tying everything together
//
// Hand strength uses a deliberately simplified pair/triple/quad counter
// (see Score); it is not a full poker hand evaluator.
//
// The engine is strictly single-threaded and turn-based. The only suspension
// point is the human action prompt, reached through the blocking InputPort.
// Tests substitute a scripted InputPort and a recording Display, and drive
// pacing through a quartz mock clock.
package game
