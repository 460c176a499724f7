package calendar

// nameDays maps "MM-DD" to the Norwegian name-day names for that date.
var nameDays = map[string][]string{
	"01-01": {"Nyttår"},
	"01-02": {"Dagfinn", "Dagfrid"},
	"01-03": {"Alfred", "Alf"},
	"01-04": {"Roar", "Roger"},
	"01-05": {"Hanna", "Hanne"},
	"01-06": {"Aslaug", "Åslaug"},
	"01-07": {"Eldbjørg", "Knut"},
	"01-08": {"Turid", "Torfinn"},
	"01-09": {"Gunnar", "Gunn"},
	"01-10": {"Sigmund", "Sigrun"},
	"01-11": {"Børge", "Børre"},
	"01-12": {"Reinhard", "Reinert"},
	"01-13": {"Gisle", "Gislaug"},
	"01-14": {"Herbjørn", "Herbjørg"},
	"01-15": {"Laurits", "Laura"},
	"01-16": {"Hjalmar", "Hilmar"},
	"01-17": {"Anton", "Tønnes", "Tony"},
	"01-18": {"Hildur", "Hild"},
	"01-19": {"Marius", "Marion"},
	"01-20": {"Fabian", "Sebastian"},
	"01-21": {"Agnes", "Agnete"},
	"01-22": {"Ivan", "Vanja"},
	"01-23": {"Emilie", "Emil"},
	"01-24": {"Joar", "Jarle"},
	"01-25": {"Paul", "Pål"},
	"01-26": {"Øystein", "Esten"},
	"01-27": {"Gaute", "Gurli"},
	"01-28": {"Karl", "Karoline"},
	"01-29": {"Herdis", "Hermod"},
	"01-30": {"Gunnhild", "Gunda"},
	"01-31": {"Idun", "Ivar"},
	"02-01": {"Birte", "Bjarte"},
	"02-02": {"Jomar", "Jostein"},
	"02-03": {"Ansgar", "Asgeir"},
	"02-04": {"Veronika", "Vera"},
	"02-05": {"Agate", "Ågot"},
	"02-06": {"Dortea", "Dorte"},
	"02-07": {"Rikard", "Rikke"},
	"02-08": {"Åshild", "Åsne"},
	"02-09": {"Lone", "Leikny"},
	"02-10": {"Ingfrid", "Ingrid"},
	"02-11": {"Bøye", "Bård"},
	"02-12": {"Jordan", "Jørund"},
	"02-13": {"Svanhild", "Svanlaug"},
	"02-14": {"Valentin"},
	"02-15": {"Sigfred", "Sigbjørn"},
	"02-16": {"Julian", "Juliane"},
	"02-17": {"Aleksandra", "Sandra"},
	"02-18": {"Frøydis", "Frøya"},
	"02-19": {"Ella", "Elna"},
	"02-20": {"Vidar", "Vemund"},
	"02-21": {"Samuel", "Selma"},
	"02-22": {"Tina", "Tim"},
	"02-23": {"Torstein", "Torunn"},
	"02-24": {"Mattias", "Mattis"},
	"02-25": {"Viktor", "Viktoria"},
	"02-26": {"Inger", "Ingerid"},
	"02-27": {"Laila", "Lill"},
	"02-28": {"Marina", "Marin"},
	"02-29": {"Lise", "Liss"},
	"03-01": {"Audny", "Audun"},
	"03-02": {"Erna", "Ernst"},
	"03-03": {"Gunnvor", "Gunnvald"},
	"03-04": {"Ada", "Oddhild"},
	"03-05": {"Patrick", "Patricia"},
	"03-06": {"Annfrid", "Andor"},
	"03-07": {"Arnfinn", "Arnstein"},
	"03-08": {"Beate", "Betty"},
	"03-09": {"Sverre", "Sindre"},
	"03-10": {"Edel", "Edle"},
	"03-11": {"Edvin", "Ervin"},
	"03-12": {"Gregor", "Gro"},
	"03-13": {"Greta", "Grete"},
	"03-14": {"Mathilde", "Mette"},
	"03-15": {"Kristen", "Kristin"},
	"03-16": {"Gudmund", "Gudny"},
	"03-17": {"Gerda", "Gjertrud"},
	"03-18": {"Aleksander", "Sander"},
	"03-19": {"Josef", "Josefine"},
	"03-20": {"Joakim", "Kim"},
	"03-21": {"Bendik", "Bengt"},
	"03-22": {"Paula", "Pauline"},
	"03-23": {"Gerhard", "Gerd"},
	"03-24": {"Ulrikke", "Ulla"},
	"03-25": {"Maria", "Marie"},
	"03-26": {"Gabriel", "Glenn"},
	"03-27": {"Rudolf", "Rudi"},
	"03-28": {"Åsta", "Ester"},
	"03-29": {"Jonas", "Jonatan"},
	"03-30": {"Holger", "Olga"},
	"03-31": {"Vebjørn", "Vegard"},
	"04-01": {"Aron", "Arve"},
	"04-02": {"Sigvard", "Sivert"},
	"04-03": {"Gunnvald", "Gunilla"},
	"04-04": {"Nanna", "Nancy"},
	"04-05": {"Irene", "Eirin"},
	"04-06": {"Åsmund", "Asmund"},
	"04-07": {"Oddvar", "Oddveig"},
	"04-08": {"Asle", "Atle"},
	"04-09": {"Rannveig", "Rønnaug"},
	"04-10": {"Ingvald", "Ingveig"},
	"04-11": {"Ylva", "Ulf"},
	"04-12": {"Julius", "Julie"},
	"04-13": {"Asta", "Astrid"},
	"04-14": {"Ellinor", "Nora"},
	"04-15": {"Oda", "Odin"},
	"04-16": {"Magnus", "Mons"},
	"04-17": {"Elise", "Else"},
	"04-18": {"Eilif", "Eira"},
	"04-19": {"Arnulf", "Arne"},
	"04-20": {"Kjellaug", "Kjellrun"},
	"04-21": {"Jeanette", "Jannike"},
	"04-22": {"Oddgeir", "Oddny"},
	"04-23": {"Georg", "Jørgen"},
	"04-24": {"Albert", "Olaug"},
	"04-25": {"Markus", "Mark"},
	"04-26": {"Terese", "Tea"},
	"04-27": {"Charles", "Charlotte"},
	"04-28": {"Vivi", "Vivian"},
	"04-29": {"Toralf", "Torolf"},
	"04-30": {"Filip", "Filippa"},
	"05-01": {"Valborg", "Ragna"},
	"05-02": {"Åsa", "Åse"},
	"05-03": {"Gjermund", "Gørill"},
	"05-04": {"Monika", "Mona"},
	"05-05": {"Gudbrand", "Gullborg"},
	"05-06": {"Guri", "Gyri"},
	"05-07": {"Maia", "Mai"},
	"05-08": {"Åge", "Åke"},
	"05-09": {"Kasper", "Jesper"},
	"05-10": {"Asbjørg", "Asbjørn"},
	"05-11": {"Magda", "Malvin"},
	"05-12": {"Noralf", "Norvald"},
	"05-13": {"Linda", "Line"},
	"05-14": {"Kristoffer", "Krister"},
	"05-15": {"Hallvard", "Halvor"},
	"05-16": {"Sara", "Siren"},
	"05-17": {"Harald", "Ragnhild"},
	"05-18": {"Eirik", "Erik"},
	"05-19": {"Torjus", "Truls"},
	"05-20": {"Lilja", "Lilly"},
	"05-21": {"Helene", "Ellen"},
	"05-22": {"Henning", "Henny"},
	"05-23": {"Oddlaug", "Oddrun"},
	"05-24": {"Ester", "Iris"},
	"05-25": {"Ragna", "Ragnar"},
	"05-26": {"Annbjørg", "Annlaug"},
	"05-27": {"Katinka", "Katrine"},
	"05-28": {"Vilhelm", "William"},
	"05-29": {"Magnar", "Magnhild"},
	"05-30": {"Gard", "Geir"},
	"05-31": {"Pernille", "Petter"},
	"06-01": {"Juni", "Juniann"},
	"06-02": {"Runa", "Runar"},
	"06-03": {"Rasmus", "Rakel"},
	"06-04": {"Heidi", "Heid"},
	"06-05": {"Torbjørg", "Torbjørn"},
	"06-06": {"Gustav", "Gyda"},
	"06-07": {"Robert", "Robin"},
	"06-08": {"Renate", "Renee"},
	"06-09": {"Kolbein", "Kolbjørn"},
	"06-10": {"Ingolf", "Ingunn"},
	"06-11": {"Borgar", "Bjørg"},
	"06-12": {"Sigfrid", "Sigrid"},
	"06-13": {"Tone", "Tonje"},
	"06-14": {"Erlend", "Erland"},
	"06-15": {"Vigdis", "Viggo"},
	"06-16": {"Torvald", "Trond"},
	"06-17": {"Botolf", "Bodil"},
	"06-18": {"Bjørnar", "Bjørnhild"},
	"06-19": {"Erling", "Elling"},
	"06-20": {"Salve", "Sølve"},
	"06-21": {"Agnar", "Annar"},
	"06-22": {"Håkon", "Maud"},
	"06-23": {"Elfrid", "Eldrid"},
	"06-24": {"Johannes", "Jone"},
	"06-25": {"Ingve", "Yngve"},
	"06-26": {"Jesper", "Jenny"},
	"06-27": {"Arild", "Arill"},
	"06-28": {"Lea", "Leo"},
	"06-29": {"Peter", "Petra"},
	"06-30": {"Solveig", "Solvor"},
	"07-01": {"Ask", "Embla"},
	"07-02": {"Kjartan", "Kjersti"},
	"07-03": {"Andrea", "Andrine"},
	"07-04": {"Ulrik", "Ulla"},
	"07-05": {"Svein", "Svend"},
	"07-06": {"Siv", "Synnøve"},
	"07-07": {"Kjellfrid", "Kjellrun"},
	"07-08": {"Sunniva", "Synnøve"},
	"07-09": {"Gøran", "Jøran"},
	"07-10": {"Anita", "Anja"},
	"07-11": {"Kjetil", "Kjell"},
	"07-12": {"Elias", "Eldar"},
	"07-13": {"Mildrid", "Melissa"},
	"07-14": {"Solfrid", "Solrun"},
	"07-15": {"Oddmund", "Oddvin"},
	"07-16": {"Susanne", "Sanna"},
	"07-17": {"Guttorm", "Gorm"},
	"07-18": {"Arnhild", "Arngeir"},
	"07-19": {"Gerhard", "Gjert"},
	"07-20": {"Margareta", "Margit"},
	"07-21": {"Johanne", "Janne"},
	"07-22": {"Malene", "Malin"},
	"07-23": {"Brita", "Brit"},
	"07-24": {"Kristine", "Kristin"},
	"07-25": {"Jakob", "Jack"},
	"07-26": {"Anna", "Anne"},
	"07-27": {"Marit", "Mari"},
	"07-28": {"Reidar", "Reidun"},
	"07-29": {"Olav", "Ola"},
	"07-30": {"Audvar", "Audgunn"},
	"07-31": {"Elin", "Eline"},
	"08-01": {"Peder", "Per"},
	"08-02": {"Karen", "Karin"},
	"08-03": {"Olve", "Oliver"},
	"08-04": {"Arnljot", "Arvid"},
	"08-05": {"Osvald", "Oskar"},
	"08-06": {"Gunnlaug", "Gunnleiv"},
	"08-07": {"Donata", "Dordi"},
	"08-08": {"Eivind", "Eivin"},
	"08-09": {"Ronny", "Roy"},
	"08-10": {"Lorents", "Lars"},
	"08-11": {"Torill", "Tordis"},
	"08-12": {"Klara", "Klaus"},
	"08-13": {"Hilde", "Hildegunn"},
	"08-14": {"Hallgeir", "Hallgjerd"},
	"08-15": {"Margot", "Mary"},
	"08-16": {"Brynjulf", "Brynhild"},
	"08-17": {"Verner", "Wenche"},
	"08-18": {"Tormod", "Torodd"},
	"08-19": {"Sigvart", "Sigve"},
	"08-20": {"Bernhard", "Bernt"},
	"08-21": {"Ragnvald", "Ragni"},
	"08-22": {"Harriet", "Harry"},
	"08-23": {"Signe", "Signy"},
	"08-24": {"Belinda", "Bertil"},
	"08-25": {"Ludvig", "Louise"},
	"08-26": {"Orvald", "Orvind"},
	"08-27": {"Roald", "Rolf"},
	"08-28": {"Artur", "August"},
	"08-29": {"Johan", "Jone"},
	"08-30": {"Benjamin", "Ben"},
	"08-31": {"Berta", "Birte"},
	"09-01": {"Solbjørg", "Solgunn"},
	"09-02": {"Lisa", "Lise"},
	"09-03": {"Alise", "Alvhild"},
	"09-04": {"Ida", "Idar"},
	"09-05": {"Brede", "Brian"},
	"09-06": {"Sollaug", "Silje"},
	"09-07": {"Regine", "Regina"},
	"09-08": {"Amalie", "Allan"},
	"09-09": {"Trygve", "Tyra"},
	"09-10": {"Tord", "Tor"},
	"09-11": {"Dagny", "Dag"},
	"09-12": {"Jofrid", "Jorid"},
	"09-13": {"Stian", "Stig"},
	"09-14": {"Ingebjørg", "Ingeborg"},
	"09-15": {"Aslak", "Eskil"},
	"09-16": {"Liv", "Hege"},
	"09-17": {"Hildur", "Hild"},
	"09-18": {"Henriette", "Henrik"},
	"09-19": {"Konstanse", "Connie"},
	"09-20": {"Fritjof", "Frida"},
	"09-21": {"Trine", "Trygve"},
	"09-22": {"Maurits", "Morten"},
	"09-23": {"Snorre", "Snefrid"},
	"09-24": {"Jan", "Jens"},
	"09-25": {"Ingvar", "Yngvar"},
	"09-26": {"Einar", "Eina"},
	"09-27": {"Dagmar", "Dagrun"},
	"09-28": {"Lena", "Lene"},
	"09-29": {"Mikkel", "Mikal"},
	"09-30": {"Helga", "Helge"},
	"10-01": {"Rebekka", "Remi"},
	"10-02": {"Live", "Liv"},
	"10-03": {"Evald", "Evelyn"},
	"10-04": {"Frans", "Frank"},
	"10-05": {"Brynjar", "Boye"},
	"10-06": {"Målfrid", "Møyfrid"},
	"10-07": {"Birgitte", "Birgit"},
	"10-08": {"Benedikte", "Bente"},
	"10-09": {"Leif", "Leiv"},
	"10-10": {"Fridtjof", "Frits"},
	"10-11": {"Kevin", "Kennet"},
	"10-12": {"Valter", "Vibeke"},
	"10-13": {"Torgeir", "Terje"},
	"10-14": {"Kai", "Kay"},
	"10-15": {"Hedvig", "Hedda"},
	"10-16": {"Flemming", "Finn"},
	"10-17": {"Marja", "Marija"},
	"10-18": {"Kord", "Kordelia"},
	"10-19": {"Tora", "Tore"},
	"10-20": {"Henrik", "Heine"},
	"10-21": {"Bergljot", "Birger"},
	"10-22": {"Karianne", "Karine"},
	"10-23": {"Severin", "Søren"},
	"10-24": {"Eilert", "Eilif"},
	"10-25": {"Henriette", "Henrikke"},
	"10-26": {"Amanda", "Amandus"},
	"10-27": {"Sturla", "Sture"},
	"10-28": {"Simon", "Simen"},
	"10-29": {"Norbert", "Norunn"},
	"10-30": {"Aksel", "Åskel"},
	"10-31": {"Edit", "Eddy"},
	"11-01": {"Veslemøy", "Vetle"},
	"11-02": {"Tove", "Tuva"},
	"11-03": {"Raymond", "Ragna"},
	"11-04": {"Otto", "Ottar"},
	"11-05": {"Egil", "Egon"},
	"11-06": {"Leonard", "Lennart"},
	"11-07": {"Ingebrigt", "Ingelin"},
	"11-08": {"Ingvild", "Yngvild"},
	"11-09": {"Tordis", "Teodor"},
	"11-10": {"Gudbjørg", "Gudveig"},
	"11-11": {"Martin", "Marte"},
	"11-12": {"Torkjell", "Torkil"},
	"11-13": {"Kirsten", "Kirsti"},
	"11-14": {"Fredrik", "Fred"},
	"11-15": {"Oddfrid", "Oddny"},
	"11-16": {"Edmund", "Edgar"},
	"11-17": {"Hugo", "Hogne"},
	"11-18": {"Magne", "Magny"},
	"11-19": {"Elisabeth", "Lisbet"},
	"11-20": {"Halvard", "Halldis"},
	"11-21": {"Mariann", "Marianne"},
	"11-22": {"Cecilie", "Sissel"},
	"11-23": {"Klement", "Klaus"},
	"11-24": {"Gudrun", "Guro"},
	"11-25": {"Katarina", "Kari"},
	"11-26": {"Konrad", "Kurt"},
	"11-27": {"Torlaug", "Torleif"},
	"11-28": {"Ruben", "Rut"},
	"11-29": {"Sofie", "Sonja"},
	"11-30": {"Andreas", "Anders"},
	"12-01": {"Arnold", "Arnt"},
	"12-02": {"Borghild", "Borgny"},
	"12-03": {"Sveinung", "Svein"},
	"12-04": {"Barbara", "Barbro"},
	"12-05": {"Stine", "Stein"},
	"12-06": {"Nils", "Nikolai"},
	"12-07": {"Hallfrid", "Hallstein"},
	"12-08": {"Andrea", "Andre"},
	"12-09": {"Anniken", "Anine"},
	"12-10": {"Judit", "Jytte"},
	"12-11": {"Daniel", "Dan"},
	"12-12": {"Pia", "Peggy"},
	"12-13": {"Lucia", "Lydia"},
	"12-14": {"Steinar", "Stein"},
	"12-15": {"Hilda", "Hilmar"},
	"12-16": {"Adelheid", "Adele"},
	"12-17": {"Inga", "Inge"},
	"12-18": {"Kristoffer", "Kate"},
	"12-19": {"Isak", "Iselin"},
	"12-20": {"Abraham", "Amund"},
	"12-21": {"Thomas", "Tom"},
	"12-22": {"Ingemar", "Ingar"},
	"12-23": {"Sigurd", "Sjur"},
	"12-24": {"Adam", "Eva"},
	"12-25": {"Første juledag"},
	"12-26": {"Stefan", "Steffen"},
	"12-27": {"Narve", "Natalie"},
	"12-28": {"Unni", "Une"},
	"12-29": {"Vidar", "Vebjørn"},
	"12-30": {"David", "Diana"},
	"12-31": {"Sylfest", "Sylvia"},
}
