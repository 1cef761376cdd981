package quiz

// Banks lists every quiz variant the server offers, keyed by URL slug.
var Banks = map[string]*Bank{
	VAKBank.Key:                VAKBank,
	WineVAKBank.Key:            WineVAKBank,
	CommunicationStyleBank.Key: CommunicationStyleBank,
}

// Lookup returns the bank registered under the given key.
func Lookup(key string) (*Bank, bool) {
	b, ok := Banks[key]
	return b, ok
}
