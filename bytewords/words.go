// Package bytewords implements the Bytewords byte-to-text codec: a
// bijection between bytes and a 256-word English dictionary (spec.md
// §4.3). The minimal style — the only style the UR wire framing in the
// ur package uses — keeps only the first and last letter of each word,
// giving a two-character-per-byte encoding. The standard (space
// separated, full word) and URI (hyphen separated, full word) styles are
// also implemented, following src/bytewords.c in the retrieved reference
// sources, which defines all three; this module's own wire format only
// ever emits minimal.
package bytewords

// wordList holds the canonical 256 four-letter Bytewords, indexed by
// byte value. Grounded on the BCR-2020-012 word list as reproduced in
// the retrieved Go and C reference implementations.
const wordList = "ableacidalsoapexaquaarchatomauntawayaxisbackbaldbarnbeltbetabiasbluebodybragbrewbulbbuzzcalmcashcatschefcityclawcodecolacookcostcruxcurlcuspcyandarkdatadaysdelidicedietdoordowndrawdropdrumdulldutyeacheasyechoedgeepicevenexamexiteyesfactfairfernfigsfilmfishfizzflapflewfluxfoxyfreefrogfuelfundgalagamegeargemsgiftgirlglowgoodgraygrimgurugushgyrohalfhanghardhawkheathelphighhillholyhopehornhutsicedideaidleinchinkyintoirisironitemjadejazzjoinjoltjowljudojugsjumpjunkjurykeepkenokeptkeyskickkilnkingkitekiwiknoblamblavalazyleaflegsliarlimplionlistlogoloudloveluaulucklungmainmanymathmazememomenumeowmildmintmissmonknailnavyneednewsnextnoonnotenumbobeyoboeomitonyxopenovalowlspaidpartpeckplaypluspoempoolposepuffpumapurrquadquizraceramprealredorichroadrockroofrubyruinrunsrustsafesagascarsetssilkskewslotsoapsolosongstubsurfswantacotasktaxitenttiedtimetinytoiltombtoystriptunatwinuglyundouniturgeuservastveryvetovialvibeviewvisavoidvowswallwandwarmwaspwavewaxywebswhatwhenwhizwolfworkyankyawnyellyogayurtzapszerozestzinczonezoom"

var words [256]string

// lookupTable maps (lastChar-'a')*26+(firstChar-'a') to the byte value,
// or -1 if no word has that first/last letter pair. 676 entries, ~1.3KB,
// giving O(1) decode as spec.md's design notes (§9, "Bytewords lookup
// table") recommend over a 256-word linear scan.
var lookupTable [26 * 26]int16

func init() {
	for i := 0; i < 256; i++ {
		words[i] = wordList[i*4 : i*4+4]
	}
	for i := range lookupTable {
		lookupTable[i] = -1
	}
	for i, w := range words {
		x := w[0] - 'a'
		y := w[3] - 'a'
		lookupTable[int(y)*26+int(x)] = int16(i)
	}
}
