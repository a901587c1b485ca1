package types

// Account owns an ordered set of cards. Name, Age, Login and Password are
// fixed once the account has been validated and stored.
type Account struct {
	Name     string
	Age      int
	Login    string
	Password string
	Cards    []*Card
}

// AddCard appends c; insertion order is display order.
func (a *Account) AddCard(c *Card) {
	a.Cards = append(a.Cards, c)
}

// DeleteCard removes c by number. Absent cards are ignored.
func (a *Account) DeleteCard(c *Card) {
	for i, own := range a.Cards {
		if own == c || own.Number == c.Number {
			a.Cards = append(a.Cards[:i:i], a.Cards[i+1:]...)
			return
		}
	}
}

// Card returns the card with the given number.
func (a *Account) Card(number string) (*Card, bool) {
	for _, c := range a.Cards {
		if c.Number == number {
			return c, true
		}
	}
	return nil, false
}

// Authenticated reports plaintext equality of both credentials.
func (a *Account) Authenticated(login, password string) bool {
	return a.Login == login && a.Password == password
}

// Session carries the account the current command acts on.
type Session struct {
	Account *Account
}

// Login returns the login of the session account.
func (s *Session) Login() string { return s.Account.Login }
