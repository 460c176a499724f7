package content

var jokes = []string{
	"Hvorfor går nordmenn alltid i fjellet? Fordi det er så oppoverbakke å bo der! 🏔️",
	"Hva sa snømåkeren til naboen? 'Jeg skyfler bare innom!' ❄️",
	"Hvorfor er norske biler så trege? Fordi de alltid går i sneglefart gjennom bomstasjonene! 🚗",
	"Hva kaller du en bjørn uten tenner? En gummy bear! 🐻",
	"Hvorfor klemte mannen klokken? Fordi tiden flyr! ⏰",
	"Hva gjør en lat hund? Han bjeffelansen! 🐕",
	"Hvorfor tok fisken dårlige karakterer? Fordi han var under C-nivået! 🐟",
	"Hva sa den ene veggen til den andre? Vi møtes i hjørnet! 🏠",
	"Hvorfor er matematikkboken alltid trist? Den har så mange problemer! 📚",
	"Hva kaller du en sau uten bein? En sky! ☁️🐑",
	"Hvorfor lo sjiraffen? Fordi gresset kilte ham under føttene! 🦒",
	"Hva sa tomatmamma til tomatbarn som sakket akterut? Ketchup! 🍅",
	"Hvorfor kan ikke sykler stå av seg selv? De er to-hjulet! 🚲",
	"Hva slags sko bruker spioner? Sneak-ers! 👟",
	"Hvorfor er havet så vennlig? Det vinker alltid! 🌊",
	"Hva kaller du en dinosaur som alltid sover? En dino-snore! 🦕",
	"Hvorfor gikk tomaten rød? Den så salatdressingen! 🥗",
	"Hva sa null til åtte? 'Fin belte!' 🔢",
	"Hvorfor kan ikke elefanter bruke datamaskiner? De er redde for musen! 🐘🖱️",
	"Hva er en vampyrs favorittfrukt? Blodappelsin! 🧛",
}

var proverbs = []string{
	"Borte bra, men hjemme best.",
	"Den som venter på noe godt, venter ikke forgjeves.",
	"Det er ikke gull alt som glimrer.",
	"Øvelse gjør mester.",
	"Bedre føre var enn etter snar.",
	"Den som ler sist, ler best.",
	"Smått er godt.",
	"Man skal ikke skue hunden på hårene.",
	"Ingen roser uten torner.",
	"Sakte, men sikkert.",
	"Etter regn kommer sol.",
	"Det nytter ikke å gråte over spilt melk.",
	"Morgenstund har gull i munn.",
	"Alle gode ting er tre.",
	"Den som graver en grav for andre, faller selv i den.",
}

var quotes = []string{
	"Hver dag er en ny mulighet til å bli bedre enn i går.",
	"Suksess er summen av små innsatser, gjentatt dag etter dag.",
	"Det eneste som står mellom deg og drømmen din er viljen til å prøve.",
	"Vær modig. Ta sjanser. Ingenting kan erstatte erfaring.",
	"Livet er 10% hva som skjer med deg og 90% hvordan du reagerer.",
	"Start der du er. Bruk det du har. Gjør det du kan.",
	"Den beste tiden å plante et tre var for 20 år siden. Den nest beste er nå.",
	"Tro på deg selv. Du er sterkere enn du tror.",
	"Ikke vent på muligheter. Skap dem.",
	"Små steg hver dag fører til store forandringer over tid.",
	"Hver ekspert var en gang en nybegynner.",
	"Din eneste grense er deg selv.",
	"Gjør det som er riktig, ikke det som er lett.",
	"Dagen i dag er en gave, derfor kaller vi den presang.",
	"Du trenger ikke være perfekt for å starte, men du må starte for å bli bedre.",
	"Fremtiden tilhører de som tror på skjønnheten i drømmene sine.",
	"Det er aldri for sent å bli den du kunne ha vært.",
	"Mot er ikke fraværet av frykt, men beslutningen om at noe annet er viktigere.",
	"Livet begynner der komfortsonen slutter.",
	"En reise på tusen mil begynner med et enkelt steg.",
	"Vær endringen du ønsker å se i verden.",
	"Hvis du kan drømme det, kan du oppnå det.",
	"Feil er bare bevis på at du prøver.",
	"Holdningen din bestemmer retningen din.",
	"Hver dag bringer nye valg.",
}

var funFacts = []string{
	"🧠 Hjernen din bruker 20% av kroppens energi, selv om den bare utgjør 2% av vekten.",
	"🐙 Blekkspruter har tre hjerter og blått blod!",
	"🍯 Honning blir aldri dårlig. Arkeologer har funnet 3000 år gammel honning som fortsatt var spiselig.",
	"🦈 Haier har eksistert lenger enn trær. De er over 400 millioner år gamle!",
	"🌙 Det er fotspor på månen som vil vare i millioner av år fordi det ikke er vind der.",
	"🐝 En bie besøker 50-100 blomster per tur for å samle nektar.",
	"⚡ Et lyn er fem ganger varmere enn overflaten av solen!",
	"🦋 Sommerfugler smaker med føttene.",
	"🏔️ Mount Everest vokser med ca. 4mm hvert år.",
	"🎸 Lyden av en gitar når deg før lyden av tordenen, selv om lynet skjer samtidig.",
	"🐘 Elefanter er det eneste dyret som ikke kan hoppe.",
	"🌍 Jorda roterer med 1670 km/t ved ekvator.",
	"🦀 Hummere kan leve i over 100 år.",
	"🌻 Solsikker følger solen gjennom dagen - det kalles heliotropisme.",
	"🐧 Pingviner kan hoppe nesten 2 meter opp i luften!",
	"🧊 90% av en isfjells masse er under vann.",
	"🦩 Flamingoer er egentlig hvite - maten deres gjør dem rosa!",
	"🌲 Det finnes et tre i Sverige som er over 9500 år gammelt.",
	"🐨 Koalaer sover 18-22 timer i døgnet.",
	"🌈 Det finnes ingen to snøfnugg som er helt like.",
	"🦷 Tennene til en hai er like sterke som stål.",
	"🦔 Pinnsvin har ca. 5000 pigger på kroppen.",
	"🐄 Kuer har beste venner og blir stresset når de skilles.",
	"🌊 Stillehavet er større enn all landjorda på jorden til sammen.",
	"🦜 Papegøyer kan leve til de blir over 80 år.",
}

var challenges = []string{
	"💪 Gjør 20 pushups før lunsj!",
	"🚶 Gå 10 000 skritt i dag",
	"📚 Les minst 20 sider i en bok",
	"🧘 Ta 10 minutter meditasjon",
	"💧 Drikk 8 glass vann i dag",
	"📵 1 time uten sosiale medier",
	"🍎 Spis 5 porsjoner frukt/grønt",
	"😊 Gi 3 komplimenter til andre",
	"📝 Skriv ned 3 ting du er takknemlig for",
	"🎵 Lytt til et album du aldri har hørt før",
	"📞 Ring en venn du ikke har snakket med på lenge",
	"🌳 Tilbring 30 min ute i naturen",
	"🧹 Rydd et rom i hjemmet ditt",
	"🍳 Lag en ny oppskrift til middag",
	"✍️ Skriv et håndskrevet brev til noen",
	"🎨 Gjør noe kreativt i 15 minutter",
	"🏃 Ta trappen i stedet for heisen hele dagen",
	"😴 Legg deg 30 min tidligere enn vanlig",
	"📖 Lær et nytt ord på et fremmed språk",
	"🌅 Se soloppgangen eller solnedgangen",
}
