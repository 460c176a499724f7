package calendar

// historicalEvents maps "MM-DD" to on-this-day entries.
var historicalEvents = map[string][]string{
	"01-01": {"1863: Abraham Lincoln signerte frigjøringsproklamasjonen", "1959: Cuba ble frigjort fra diktatur"},
	"01-02": {"1959: Luna 1 ble det første romfartøyet til å forlate jordas gravitasjon"},
	"01-03": {"1959: Alaska ble USAs 49. stat"},
	"01-04": {"2004: NASAs Mars-rover Spirit landet på Mars"},
	"01-05": {"1933: Byggingen av Golden Gate Bridge startet"},
	"01-06": {"1838: Samuel Morse demonstrerte telegrafen for første gang"},
	"01-07": {"1610: Galileo oppdaget Jupiters måner"},
	"01-08": {"1889: Herman Hollerith patenterte hullkortmaskinen"},
	"01-09": {"2007: Steve Jobs presenterte den første iPhone"},
	"01-10": {"1946: Radar kontaktet månen for første gang"},
	"01-11": {"1922: Insulin ble brukt til behandling av diabetes for første gang"},
	"01-12": {"1966: 'Batman' TV-serien hadde premiere"},
	"01-13": {"1898: Émile Zola publiserte 'J'Accuse!'"},
	"01-14": {"1954: Marilyn Monroe giftet seg med Joe DiMaggio"},
	"01-15": {"1759: British Museum åpnet for publikum"},
	"01-16": {"1920: Alkoholforbudet startet i USA"},
	"01-17": {"1706: Benjamin Franklin ble født", "1995: Jordskjelvet i Kobe, Japan"},
	"01-18": {"1778: James Cook oppdaget Hawaii"},
	"01-19": {"1983: Apple Lisa, den første PC med grafisk brukergrensesnitt, ble lansert"},
	"01-20": {"1961: John F. Kennedy ble USAs president"},
	"01-21": {"1976: Concorde startet passasjerflyvninger"},
	"01-22": {"1984: Apple Macintosh ble lansert"},
	"01-23": {"1849: Elizabeth Blackwell ble USAs første kvinnelige lege"},
	"01-24": {"1848: Gullet ble oppdaget i California"},
	"01-25": {"1924: De første vinter-OL åpnet i Chamonix, Frankrike"},
	"01-26": {"1788: Det første skipet med europeere ankom Australia"},
	"01-27": {"1880: Thomas Edison fikk patent på lyspæren", "1945: Auschwitz ble frigjort"},
	"01-28": {"1986: Romfergen Challenger eksploderte"},
	"01-29": {"1886: Karl Benz patenterte verdens første bil"},
	"01-30": {"1933: Adolf Hitler ble Tysklands kansler"},
	"01-31": {"1958: USA sendte sin første satellitt, Explorer 1"},
	"02-01": {"2003: Romfergen Columbia forulykket"},
	"02-02": {"1925: Siste del av hundesleden som fraktet serum til Nome, Alaska"},
	"02-03": {"1959: 'The Day the Music Died' - Buddy Holly, Ritchie Valens og The Big Bopper døde"},
	"02-04": {"2004: Facebook ble grunnlagt av Mark Zuckerberg"},
	"02-05": {"1919: United Artists ble grunnlagt av Charlie Chaplin og andre"},
	"02-06": {"1952: Dronning Elizabeth II ble dronning av Storbritannia"},
	"02-07": {"1964: The Beatles ankom USA for første gang"},
	"02-08": {"1910: Boy Scouts of America ble grunnlagt"},
	"02-09": {"1964: The Beatles opptrådte på The Ed Sullivan Show"},
	"02-10": {"1996: IBMs Deep Blue slo Garry Kasparov i sjakk"},
	"02-11": {"1990: Nelson Mandela ble løslatt etter 27 år i fengsel"},
	"02-12": {"1809: Charles Darwin og Abraham Lincoln ble født på samme dag"},
	"02-13": {"1633: Galileo ankom Roma for å stilles for inkvisisjonen"},
	"02-14": {"1876: Alexander Graham Bell og Elisha Gray søkte om patent på telefonen samme dag"},
	"02-15": {"1965: Canada fikk sitt nåværende flagg med lønnebladet"},
	"02-16": {"1923: Howard Carter åpnet Tutankhamons grav"},
	"02-17": {"1959: USA lanserte Vanguard II, den første værsatellitten"},
	"02-18": {"1930: Clyde Tombaugh oppdaget Pluto"},
	"02-19": {"1878: Thomas Edison patenterte fonografen"},
	"02-20": {"1962: John Glenn ble den første amerikaneren i bane rundt jorda"},
	"02-21": {"1848: Det kommunistiske manifest ble publisert"},
	"02-22": {"1980: USAs ishockeylag slo Sovjetunionen - 'Miracle on Ice'"},
	"02-23": {"1455: Gutenberg-bibelen ble trykt - den første trykte boken"},
	"02-24": {"1989: Første flyvning med Boeing 747-400"},
	"02-25": {"1836: Samuel Colt patenterte revolveren"},
	"02-26": {"1815: Napoleon rømte fra eksil på Elba"},
	"02-27": {"1933: Riksdagsbrannen i Berlin"},
	"02-28": {"1953: Watson og Crick oppdaget DNA-strukturen"},
	"02-29": {"1940: Hattie McDaniel ble den første afroamerikaner som vant en Oscar"},
	"03-01": {"1872: Yellowstone ble verdens første nasjonalpark"},
	"03-02": {"1877: Rutherford B. Hayes ble USAs president etter det mest omstridte valget i historien"},
	"03-03": {"1847: Alexander Graham Bell ble født"},
	"03-04": {"1789: USAs grunnlov trådte i kraft"},
	"03-05": {"1946: Winston Churchill holdt sin berømte 'jerntepe'-tale"},
	"03-06": {"1899: Aspirin ble patentert av Bayer"},
	"03-07": {"1876: Alexander Graham Bell fikk patent på telefonen"},
	"03-08": {"1917: Den russiske revolusjonen startet"},
	"03-09": {"1959: Barbie-dukken ble lansert"},
	"03-10": {"1876: Alexander Graham Bell gjennomførte den første telefonsamtalen"},
	"03-11": {"2011: Jordskjelv og tsunami rammet Japan"},
	"03-12": {"1894: Coca-Cola ble solgt i flasker for første gang"},
	"03-13": {"1781: William Herschel oppdaget planeten Uranus"},
	"03-14": {"1879: Albert Einstein ble født", "Pi-dagen (3.14)"},
	"03-15": {"44 f.Kr.: Julius Cæsar ble myrdet"},
	"03-16": {"1802: United States Military Academy (West Point) ble etablert"},
	"03-17": {"461: Sankt Patricks dag - Irlands nasjonaldag"},
	"03-18": {"1965: Aleksei Leonov ble det første mennesket til å gå i verdensrommet"},
	"03-19": {"1918: USA innførte sommertid for første gang"},
	"03-20": {"1852: 'Onkel Toms hytte' ble publisert"},
	"03-21": {"1871: Otto von Bismarck ble Tysklands første kansler"},
	"03-22": {"1895: Lumiére-brødrene viste film offentlig for første gang"},
	"03-23": {"1983: President Reagan lanserte 'Star Wars'-programmet"},
	"03-24": {"1989: Exxon Valdez-ulykken i Alaska"},
	"03-25": {"1807: Storbritannia avskaffet slavehandel"},
	"03-26": {"1979: Egypt og Israel signerte fredsavtalen"},
	"03-27": {"1968: Jurij Gagarin omkom i en flyulykke"},
	"03-28": {"1979: Harrisburg-ulykken (Three Mile Island)"},
	"03-29": {"1974: Terrakottahæren ble oppdaget i Kina"},
	"03-30": {"1867: USA kjøpte Alaska fra Russland"},
	"03-31": {"1889: Eiffeltårnet ble offisielt åpnet"},
	"04-01": {"1976: Apple ble grunnlagt av Steve Jobs og Steve Wozniak"},
	"04-02": {"1513: Juan Ponce de León oppdaget Florida"},
	"04-03": {"1860: Pony Express startet postlevering i USA"},
	"04-04": {"1968: Martin Luther King Jr. ble drept"},
	"04-05": {"1955: Winston Churchill trakk seg som Storbritannias statsminister"},
	"04-06": {"1896: De første moderne olympiske leker åpnet i Athen"},
	"04-07": {"1948: Verdens helseorganisasjon (WHO) ble grunnlagt"},
	"04-08": {"1820: Venus de Milo ble oppdaget på den greske øya Milos"},
	"04-09": {"1865: Den amerikanske borgerkrigen endte"},
	"04-10": {"1912: RMS Titanic la ut på sin første og siste reise"},
	"04-11": {"1970: Apollo 13 ble skutt opp"},
	"04-12": {"1961: Jurij Gagarin ble det første mennesket i verdensrommet"},
	"04-13": {"1742: Händels 'Messias' hadde premiere i Dublin"},
	"04-14": {"1912: RMS Titanic traff isfjellet", "1865: Abraham Lincoln ble skutt"},
	"04-15": {"1912: RMS Titanic sank", "1452: Leonardo da Vinci ble født"},
	"04-16": {"1943: Albert Hofmann oppdaget LSD-rusen ved et uhell"},
	"04-17": {"1961: Bay of Pigs-invasjonen startet"},
	"04-18": {"1906: San Francisco-jordskjelvet"},
	"04-19": {"1775: Den amerikanske revolusjonen startet"},
	"04-20": {"1889: Adolf Hitler ble født"},
	"04-21": {"753 f.Kr.: Roma ble grunnlagt (ifølge legenden)"},
	"04-22": {"1970: Første jordensdag ble feiret"},
	"04-23": {"1564: William Shakespeare ble født (og døde)"},
	"04-24": {"1990: Hubble-teleskopet ble skutt opp"},
	"04-25": {"1953: Watson og Crick publiserte DNA-strukturen"},
	"04-26": {"1986: Tsjernobyl-ulykken"},
	"04-27": {"1994: Sør-Afrika holdt sitt første frie valg"},
	"04-28": {"1945: Benito Mussolini ble henrettet"},
	"04-29": {"1945: Adolf Hitler giftet seg med Eva Braun"},
	"04-30": {"1789: George Washington ble innsatt som USAs første president"},
	"05-01": {"1931: Empire State Building ble offisielt åpnet"},
	"05-02": {"2011: Osama bin Laden ble drept"},
	"05-03": {"1937: 'Tatt av vinden' av Margaret Mitchell vant Pulitzer-prisen"},
	"05-04": {"1979: Margaret Thatcher ble Storbritannias første kvinnelige statsminister"},
	"05-05": {"1961: Alan Shepard ble den første amerikaneren i verdensrommet"},
	"05-06": {"1937: Hindenburg-katastrofen"},
	"05-07": {"1945: Nazi-Tyskland overga seg betingelsesløst"},
	"05-08": {"1945: VE-Day - Seiersdagen i Europa"},
	"05-09": {"1754: Benjamin Franklin publiserte den første politiske tegneserien i USA"},
	"05-10": {"1869: Den første transkontinentale jernbanen ble fullført i USA"},
	"05-11": {"330: Konstantinopel ble hovedstad i Romerriket"},
	"05-12": {"1949: Berlinblokaden ble hevet"},
	"05-13": {"1981: Pave Johannes Paul II ble skutt på Petersplassen"},
	"05-14": {"1796: Edward Jenner utviklet den første vaksinen"},
	"05-15": {"1928: Mickey Mouse dukket opp for første gang"},
	"05-16": {"1929: De første Oscar-utdelingene ble holdt"},
	"05-17": {"1814: Norges grunnlov ble signert på Eidsvoll"},
	"05-18": {"1980: Mount St. Helens hadde utbrudd"},
	"05-19": {"1536: Anne Boleyn ble henrettet"},
	"05-20": {"1873: Levi Strauss patenterte blå jeans"},
	"05-21": {"1927: Charles Lindbergh fullførte første solo-flyging over Atlanterhavet"},
	"05-22": {"1906: Wright-brødrene fikk patent på flyet sitt"},
	"05-23": {"1934: Bonnie og Clyde ble drept"},
	"05-24": {"1844: Samuel Morse sendte det første telegrammet"},
	"05-25": {"1977: Star Wars hadde premiere"},
	"05-26": {"1897: Bram Stokers 'Dracula' ble publisert"},
	"05-27": {"1937: Golden Gate Bridge ble åpnet"},
	"05-28": {"1987: Mathias Rust landet et småfly på Den røde plass i Moskva"},
	"05-29": {"1953: Edmund Hillary og Tenzing Norgay nådde toppen av Mount Everest"},
	"05-30": {"1431: Jeanne d'Arc ble brent på bålet"},
	"05-31": {"1911: RMS Titanic ble sjøsatt"},
	"06-01": {"1967: The Beatles ga ut 'Sgt. Pepper's Lonely Hearts Club Band'"},
	"06-02": {"1953: Dronning Elizabeth II ble kronet"},
	"06-03": {"1965: Ed White ble den første amerikaneren til å gå i verdensrommet"},
	"06-04": {"1989: Massakren på Den himmelske freds plass i Beijing"},
	"06-05": {"1981: De første AIDS-tilfellene ble rapportert"},
	"06-06": {"1944: D-dagen - Invasjonen av Normandie"},
	"06-07": {"1942: Slaget ved Midway endte"},
	"06-08": {"632: Profeten Muhammad døde"},
	"06-09": {"68: Keiser Nero begikk selvmord"},
	"06-10": {"1935: Anonyme Alkoholikere ble grunnlagt"},
	"06-11": {"1962: Frank Morris og brødrene Anglin rømte fra Alcatraz"},
	"06-12": {"1942: Anne Frank begynte å skrive dagboken sin"},
	"06-13": {"1983: Pioneer 10 passerte Neptuns bane"},
	"06-14": {"1777: Det amerikanske flagget ble vedtatt"},
	"06-15": {"1215: Magna Carta ble signert"},
	"06-16": {"1903: Ford Motor Company ble grunnlagt"},
	"06-17": {"1972: Watergate-innbruddet"},
	"06-18": {"1815: Slaget ved Waterloo"},
	"06-19": {"1865: Juneteenth - Frigjøringsdagen for slaver i Texas"},
	"06-20": {"1782: Den amerikanske kongressens store segl ble vedtatt"},
	"06-21": {"1788: USAs grunnlov ble ratifisert"},
	"06-22": {"1941: Operasjon Barbarossa - Nazi-Tyskland angrep Sovjetunionen"},
	"06-23": {"1868: Christopher Latham Sholes patenterte skrivemaskinen"},
	"06-24": {"1948: Berlin-blokaden startet"},
	"06-25": {"1950: Koreakrigen startet"},
	"06-26": {"1974: Det første produktet med strekkode ble skannet"},
	"06-27": {"1967: Verdens første minibank ble åpnet i London"},
	"06-28": {"1914: Skuddene i Sarajevo startet første verdenskrig"},
	"06-29": {"2007: Første iPhone ble lansert"},
	"06-30": {"1936: 'Tatt av vinden' ble publisert"},
	"07-01": {"1867: Canada ble en selvstendig nasjon"},
	"07-02": {"1937: Amelia Earhart forsvant over Stillehavet"},
	"07-03": {"1863: Slaget ved Gettysburg endte"},
	"07-04": {"1776: USAs uavhengighetserklæring ble signert"},
	"07-05": {"1996: Dolly the sheep ble født - det første klonede pattedyret"},
	"07-06": {"1885: Louis Pasteur testet vellykket rabiesvaksinen"},
	"07-07": {"2005: Terrorangrepene i London"},
	"07-08": {"1889: Wall Street Journal ble publisert for første gang"},
	"07-09": {"1877: Første Wimbledon-turnering"},
	"07-10": {"1962: Telstar 1, den første kommunikasjonssatellitten, ble skutt opp"},
	"07-11": {"1804: Alexander Hamilton ble drept i duell med Aaron Burr"},
	"07-12": {"1862: Congredalmedaljen ble opprettet"},
	"07-13": {"1985: Live Aid-konsertene"},
	"07-14": {"1789: Storming av Bastillen - Den franske revolusjonen startet"},
	"07-15": {"1099: Jerusalem ble erobret under det første korstoget"},
	"07-16": {"1969: Apollo 11 ble skutt opp mot månen"},
	"07-17": {"1955: Disneyland åpnet"},
	"07-18": {"64: Romas brann startet under keiser Nero"},
	"07-19": {"1799: Rosetta-steinen ble oppdaget"},
	"07-20": {"1969: Neil Armstrong og Buzz Aldrin landet på månen"},
	"07-21": {"1969: Neil Armstrong gikk på månen"},
	"07-22": {"1934: FBI-agenter drepte John Dillinger"},
	"07-23": {"1903: Ford solgte sin første bil, Modell A"},
	"07-24": {"1969: Apollo 11 returnerte trygt til jorda"},
	"07-25": {"1978: Verdens første prøverørsbarn ble født"},
	"07-26": {"1945: Potsdam-deklarasjonen ble utstedt"},
	"07-27": {"1953: Våpenhvilen i Koreakrigen ble signert"},
	"07-28": {"1914: Første verdenskrig startet"},
	"07-29": {"1981: Prins Charles og Lady Diana giftet seg"},
	"07-30": {"1619: Første representative forsamling i Amerika møttes"},
	"07-31": {"1790: Det første amerikanske patentet ble utstedt"},
	"08-01": {"1981: MTV startet sendinger"},
	"08-02": {"1990: Irak invaderte Kuwait"},
	"08-03": {"1492: Christopher Columbus la ut på sin første reise"},
	"08-04": {"1944: Anne Frank og familien ble arrestert"},
	"08-05": {"1963: Prøvestansavtalen for atomvåpen ble signert"},
	"08-06": {"1945: Atombomben ble sluppet over Hiroshima"},
	"08-07": {"1942: Slaget om Guadalcanal startet"},
	"08-08": {"1974: Richard Nixon annonserte sin avgang"},
	"08-09": {"1945: Atombomben ble sluppet over Nagasaki"},
	"08-10": {"1846: Smithsonian Institution ble grunnlagt"},
	"08-11": {"1999: Total solformørkelse over Europa"},
	"08-12": {"1981: IBM lanserte sin første personlige datamaskin"},
	"08-13": {"1961: Byggingen av Berlinmuren startet"},
	"08-14": {"1945: Japan overga seg - Andre verdenskrig endte"},
	"08-15": {"1969: Woodstock-festivalen startet"},
	"08-16": {"1977: Elvis Presley døde"},
	"08-17": {"1978: Første ballongferd over Atlanterhavet"},
	"08-18": {"1920: Den 19. grunnlovsendringen ga amerikanske kvinner stemmerett"},
	"08-19": {"1839: Daguerreotypi-prosessen ble offentliggjort"},
	"08-20": {"1977: Voyager 2 ble skutt opp"},
	"08-21": {"1959: Hawaii ble USAs 50. stat"},
	"08-22": {"1862: Røde Kors ble grunnlagt"},
	"08-23": {"1939: Molotov-Ribbentrop-pakten ble signert"},
	"08-24": {"79: Mount Vesuvius hadde utbrudd og begravde Pompeii"},
	"08-25": {"1835: Månebløffen - New York Sun publiserte at det var liv på månen"},
	"08-26": {"1920: Kvinner i USA fikk stemmerett"},
	"08-27": {"1883: Krakatoa hadde utbrudd"},
	"08-28": {"1963: Martin Luther King Jr. holdt 'I Have a Dream'-talen"},
	"08-29": {"2005: Orkanen Katrina traff kysten av USA"},
	"08-30": {"1963: Den røde telefonen mellom Washington og Moskva ble installert"},
	"08-31": {"1997: Prinsesse Diana døde i en bilulykke i Paris"},
	"09-01": {"1939: Andre verdenskrig startet - Tyskland invaderte Polen"},
	"09-02": {"1945: Japan signerte overgivelsespapirene"},
	"09-03": {"1939: Storbritannia og Frankrike erklærte krig mot Tyskland"},
	"09-04": {"1998: Google ble grunnlagt"},
	"09-05": {"1977: Voyager 1 ble skutt opp"},
	"09-06": {"1901: President McKinley ble skutt"},
	"09-07": {"1940: The Blitz - Bombingen av London startet"},
	"09-08": {"1966: Star Trek hadde premiere på TV"},
	"09-09": {"1976: Mao Zedong døde"},
	"09-10": {"2008: Large Hadron Collider ble aktivert for første gang"},
	"09-11": {"2001: Terrorangrepene på World Trade Center og Pentagon"},
	"09-12": {"1940: Lascaux-hulen med hulemalerier ble oppdaget"},
	"09-13": {"1993: Oslo-avtalen ble signert av Israel og PLO"},
	"09-14": {"1814: Francis Scott Key skrev 'The Star-Spangled Banner'"},
	"09-15": {"1935: Nürnberglovene ble innført i Nazi-Tyskland"},
	"09-16": {"1620: Mayflower la ut fra Plymouth, England"},
	"09-17": {"1787: USAs grunnlov ble signert"},
	"09-18": {"1970: Jimi Hendrix døde"},
	"09-19": {"1893: New Zealand ble det første landet som ga kvinner stemmerett"},
	"09-20": {"1854: Slaget ved Alma under Krimkrigen"},
	"09-21": {"1937: Hobbiten av J.R.R. Tolkien ble publisert"},
	"09-22": {"1862: Lincoln kunngjorde frigjøringsproklamasjonen"},
	"09-23": {"1846: Neptun ble oppdaget"},
	"09-24": {"1789: Høyesterett i USA ble opprettet"},
	"09-25": {"1513: Vasco Núñez de Balboa oppdaget Stillehavet"},
	"09-26": {"1983: Stanislav Petrov forhindret atomkrig ved å ignorere falsk alarm"},
	"09-27": {"1998: Google ble offentlig lansert"},
	"09-28": {"1928: Alexander Fleming oppdaget penicillin"},
	"09-29": {"1829: Londons Metropolitan Police ble etablert"},
	"09-30": {"1955: James Dean døde i en bilulykke"},
	"10-01": {"1908: Ford Model T ble lansert"},
	"10-02": {"1950: Peanuts (Knøttene) ble publisert for første gang"},
	"10-03": {"1990: Tyskland ble gjenforent"},
	"10-04": {"1957: Sputnik 1, den første satellitten, ble skutt opp"},
	"10-05": {"1962: The Beatles ga ut sin første singel, 'Love Me Do'"},
	"10-06": {"1973: Yom Kippur-krigen startet"},
	"10-07": {"1959: Første bilder av månens bakside ble tatt av Luna 3"},
	"10-08": {"1871: Den store brannen i Chicago startet"},
	"10-09": {"1967: Che Guevara ble henrettet"},
	"10-10": {"1964: De olympiske leker i Tokyo åpnet"},
	"10-11": {"1975: Saturday Night Live hadde premiere"},
	"10-12": {"1492: Christopher Columbus ankom Amerika"},
	"10-13": {"1307: Tempelridderne ble arrestert - opprinnelsen til fredag 13."},
	"10-14": {"1066: Slaget ved Hastings"},
	"10-15": {"1815: Napoleon ankom eksil på St. Helena"},
	"10-16": {"1793: Marie Antoinette ble henrettet"},
	"10-17": {"1989: Jordskjelvet i San Francisco under World Series"},
	"10-18": {"1867: USA overtok Alaska fra Russland"},
	"10-19": {"1781: Britene overga seg ved Yorktown"},
	"10-20": {"1973: Sydney Opera House åpnet"},
	"10-21": {"1879: Thomas Edison fullførte den første praktiske lyspæren"},
	"10-22": {"1962: President Kennedy kunngjorde cubakrisen"},
	"10-23": {"1983: Bombeangrepet i Beirut drepte 241 amerikanske soldater"},
	"10-24": {"1945: FN ble offisielt grunnlagt"},
	"10-25": {"1854: Kavaleriangrep i Krimkrigen - 'The Charge of the Light Brigade'"},
	"10-26": {"1881: Skuddvekslingen ved O.K. Corral"},
	"10-27": {"1904: New Yorks første undergrunnsbane åpnet"},
	"10-28": {"1886: Frihetsgudinnen ble avduket"},
	"10-29": {"1929: Black Tuesday - Børskrakket"},
	"10-30": {"1938: Orson Welles' 'Klodenes kamp' skapte panikk"},
	"10-31": {"1517: Martin Luther slo opp sine 95 teser"},
	"11-01": {"1952: USA detonerte den første hydrogenbomben"},
	"11-02": {"1947: Spruce Goose fløy for første og eneste gang"},
	"11-03": {"1957: Laika ble det første dyret i bane rundt jorda"},
	"11-04": {"1922: Tutankhamons grav ble oppdaget"},
	"11-05": {"1605: Kruttkomplottets dag i England"},
	"11-06": {"1860: Abraham Lincoln ble valgt til president"},
	"11-07": {"1917: Oktoberrevolusjonen i Russland"},
	"11-08": {"1895: Wilhelm Röntgen oppdaget røntgenstråler"},
	"11-09": {"1989: Berlinmuren falt"},
	"11-10": {"1969: Sesame Street hadde premiere"},
	"11-11": {"1918: Første verdenskrig endte"},
	"11-12": {"1990: Tim Berners-Lee publiserte forslaget til World Wide Web"},
	"11-13": {"1985: Vulkanen Nevado del Ruiz hadde utbrudd i Colombia"},
	"11-14": {"1889: Nellie Bly begynte sin reise rundt verden på 72 dager"},
	"11-15": {"1971: Intel lanserte den første mikroprosessoren"},
	"11-16": {"1945: UNESCO ble grunnlagt"},
	"11-17": {"1970: Datamusen ble patentert"},
	"11-18": {"1928: Mickey Mouse debuterte i 'Steamboat Willie'"},
	"11-19": {"1863: Gettysburg-talen av Abraham Lincoln"},
	"11-20": {"1945: Nürnberg-prosessen startet"},
	"11-21": {"1877: Thomas Edison annonserte fonografen"},
	"11-22": {"1963: John F. Kennedy ble drept i Dallas"},
	"11-23": {"1963: Doctor Who hadde premiere på BBC"},
	"11-24": {"1859: Charles Darwin publiserte 'Artenes opprinnelse'"},
	"11-25": {"1952: Agatha Christies 'Musefellen' hadde premiere"},
	"11-26": {"1922: Howard Carter åpnet Tutankhamons gravkammer"},
	"11-27": {"1895: Alfred Nobels testament etablerte Nobelprisen"},
	"11-28": {"1520: Magellan nådde Stillehavet"},
	"11-29": {"1929: Richard Byrd fløy over Sydpolen"},
	"11-30": {"1939: Vinterkrigen mellom Sovjet og Finland startet"},
	"12-01": {"1955: Rosa Parks nektet å gi opp setet sitt på bussen"},
	"12-02": {"1942: Den første kontrollerte kjernereakjonen"},
	"12-03": {"1992: Den første SMS-meldingen ble sendt"},
	"12-04": {"1872: Mary Celeste ble funnet forlatt til havs"},
	"12-05": {"1933: Alkoholforbudet i USA ble opphevet"},
	"12-06": {"1877: Thomas Edison demonstrerte fonografen"},
	"12-07": {"1941: Pearl Harbor ble angrepet"},
	"12-08": {"1980: John Lennon ble drept"},
	"12-09": {"1979: Kopper ble erklært utryddet"},
	"12-10": {"1901: De første Nobelprisene ble utdelt"},
	"12-11": {"1936: Edward VIII abdiserte for å gifte seg med Wallis Simpson"},
	"12-12": {"1901: Guglielmo Marconi sendte første radiosignal over Atlanterhavet"},
	"12-13": {"2003: Saddam Hussein ble tatt til fange"},
	"12-14": {"1911: Roald Amundsen nådde Sydpolen"},
	"12-15": {"1939: 'Tatt av vinden' hadde premiere"},
	"12-16": {"1773: Boston Tea Party"},
	"12-17": {"1903: Wright-brødrene fløy for første gang"},
	"12-18": {"1865: Det 13. grunnlovstillegget avskaffet slaveri i USA"},
	"12-19": {"1843: 'A Christmas Carol' av Charles Dickens ble publisert"},
	"12-20": {"1860: South Carolina ble første stat til å melde seg ut av USA"},
	"12-21": {"1968: Apollo 8 ble skutt opp - første mennesker rundt månen"},
	"12-22": {"1849: Fjodor Dostojevskij ble 'henrettet' - men benådet i siste sekund"},
	"12-23": {"1888: Vincent van Gogh skadet sitt eget øre"},
	"12-24": {"1914: Julevåpenhvilen under første verdenskrig"},
	"12-25": {"1991: Sovjetunionen ble offisielt oppløst"},
	"12-26": {"2004: Det katastrofale jordskjelvet og tsunamien i Det indiske hav"},
	"12-27": {"1831: HMS Beagle la ut på reisen med Charles Darwin"},
	"12-28": {"1895: Lumiére-brødrene holdt den første offentlige filmvisningen"},
	"12-29": {"1890: Massakren ved Wounded Knee"},
	"12-30": {"1922: Sovjetunionen ble offisielt dannet"},
	"12-31": {"1879: Thomas Edison demonstrerte lyspæren offentlig"},
}
