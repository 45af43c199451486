package render

const rulesTitle = "*------------------ Thumb and Pouch Solitaire ------------------*"

const rulesText = `
    Foundation: columns f1..f4, each built up in a single suit from
                Ace to King. Cards never leave a foundation once
                they are placed there.

    Tableau:    columns t1..t7, built down by rank. A card may not be
                laid on a card of its own suit. One or more face-up
                cards can move from one column to another as a run.
                An empty column accepts any card or run, from the
                tableau or from the top of the waste.

    Stock:      draw one card at a time onto the waste. The stock is
                not recycled.

    The game is won when every card is on the foundation.

`

const menuText = `
Game commands:
    TF x y     Move a card from tableau column x to foundation y
    TT x y n   Move a run of n >= 1 cards from tableau column x
               to tableau column y
    WF x       Move the top card of the waste to foundation x
    WT x       Move the top card of the waste to tableau column x
    SW         Draw one card from the stock onto the waste
    R          Restart the game with a new shuffle
    H          Show the board and this menu again
    Q          Quit the game

`

const winBanner = `
__   __             __        ___                       _ _ _
\ \ / /_ _ _   _    \ \      / (_)_ __  _ __   ___ _ __| | | |
 \ V / _` + "`" + ` | | | |    \ \ /\ / /| | '_ \| '_ \ / _ \ '__| | | |
  | | (_| | |_| |_    \ V  V / | | | | | | | |  __/ |  |_|_|_|
  |_|\__,_|\__, ( )    \_/\_/  |_|_| |_|_| |_|\___|_|  (_|_|_)
           |___/|/

`
