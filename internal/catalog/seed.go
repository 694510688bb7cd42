package catalog

import (
	"strconv"
	"strings"
)

// wordRows builds Words from (english, russian, phonetic) triples. Ids follow
// the fixed scheme <english-lowercased-dashed>-<index-in-round>, which stored
// progress records reference, so the scheme must never change.
func wordRows(rows ...[3]string) []Word {
	out := make([]Word, len(rows))
	for i, r := range rows {
		id := strings.ReplaceAll(strings.ToLower(r[0]), " ", "-")
		out[i] = Word{
			ID:       id + "-" + strconv.Itoa(i),
			English:  r[0],
			Russian:  r[1],
			Phonetic: r[2],
		}
	}
	return out
}

/// Default returns the built-in course content: ten units of two five-word
// rounds each.
func Default() *Catalog {
	return New([]Unit{
		{
			ID:   "unit-1",
			Name: "Unit 1: Greetings",
			Icon: IconSmile,
			Rounds: []Round{
				{ID: "unit-1-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"hi", "привет", "хай"},
					[3]string{"hello", "здравствуйте", "хэллоу"},
					[3]string{"goodbye", "до свидания", "гудбай"},
					[3]string{"good morning", "доброе утро", "гуд морнинг"},
					[3]string{"good night", "доброй ночи", "гуд найт"},
				)},
				{ID: "unit-1-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"how are you", "как дела?", "хау ар ю"},
					[3]string{"I’m fine", "у меня все хорошо", "айм файн"},
					[3]string{"nice to meet you", "приятно познакомиться", "найс ту мит ю"},
					[3]string{"see you", "увидимся", "си ю"},
					[3]string{"take care", "береги себя", "тэйк кэр"},
				)},
			},
		},
		{
			ID:   "unit-2",
			Name: "Unit 2: Family",
			Icon: IconUsers,
			Rounds: []Round{
				{ID: "unit-2-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"mother", "мама", "мазэр"},
					[3]string{"father", "папа", "фазэр"},
					[3]string{"sister", "сестра", "систэр"},
					[3]string{"brother", "брат", "бразэр"},
					[3]string{"parents", "родители", "пэрэнтс"},
				)},
				{ID: "unit-2-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"grandmother", "бабушка", "грэндмазэр"},
					[3]string{"grandfather", "дедушка", "грэндфазэр"},
					[3]string{"uncle", "дядя", "анкл"},
					[3]string{"aunt", "тетя", "ант"},
					[3]string{"cousin", "двоюродный брат/сестра", "казн"},
				)},
			},
		},
		{
			ID:   "unit-3",
			Name: "Unit 3: Food",
			Icon: IconUtensils,
			Rounds: []Round{
				{ID: "unit-3-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"bread", "хлеб", "брэд"},
					[3]string{"milk", "молоко", "милк"},
					[3]string{"water", "вода", "уотэр"},
					[3]string{"juice", "сок", "джус"},
					[3]string{"apple", "яблоко", "эпл"},
				)},
				{ID: "unit-3-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"tea", "чай", "ти"},
					[3]string{"coffee", "кофе", "кофи"},
					[3]string{"orange", "апельсин", "ориндж"},
					[3]string{"banana", "банан", "бэнана"},
					[3]string{"salad", "салат", "сэлэд"},
				)},
			},
		},
		{
			ID:   "unit-4",
			Name: "Unit 4: Numbers",
			Icon: IconHome,
			Rounds: []Round{
				{ID: "unit-4-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"one", "один", "уан"},
					[3]string{"two", "два", "ту"},
					[3]string{"three", "три", "сри"},
					[3]string{"four", "четыре", "фор"},
					[3]string{"five", "пять", "файв"},
				)},
				{ID: "unit-4-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"six", "шесть", "сикс"},
					[3]string{"seven", "семь", "сэвэн"},
					[3]string{"eight", "восемь", "эйт"},
					[3]string{"nine", "девять", "найн"},
					[3]string{"ten", "десять", "тэн"},
				)},
			},
		},
		{
			ID:   "unit-5",
			Name: "Unit 5: Colors",
			Icon: IconPalette,
			Rounds: []Round{
				{ID: "unit-5-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"red", "красный", "рэд"},
					[3]string{"blue", "синий", "блу"},
					[3]string{"green", "зеленый", "грин"},
					[3]string{"yellow", "желтый", "йеллоу"},
					[3]string{"black", "черный", "блэк"},
				)},
				{ID: "unit-5-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"white", "белый", "уайт"},
					[3]string{"brown", "коричневый", "браун"},
					[3]string{"orange", "оранжевый", "ориндж (колор)"},
					[3]string{"pink", "розовый", "пинк"},
					[3]string{"purple", "фиолетовый", "пёрпл"},
				)},
			},
		},
		{
			ID:   "unit-6",
			Name: "Unit 6: School",
			Icon: IconSchool,
			Rounds: []Round{
				{ID: "unit-6-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"school", "школа", "скул"},
					[3]string{"classroom", "класс", "класрум"},
					[3]string{"teacher", "учитель", "тичэр"},
					[3]string{"student", "ученик", "стьюдэнт"},
					[3]string{"lesson", "урок", "лэсн"},
				)},
				{ID: "unit-6-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"book", "книга", "бук"},
					[3]string{"pen", "ручка", "пэн"},
					[3]string{"pencil", "карандаш", "пэнсил"},
					[3]string{"desk", "парта", "дэск"},
					[3]string{"chair", "стул", "чэар"},
				)},
			},
		},
		{
			ID:   "unit-7",
			Name: "Unit 7: House",
			Icon: IconBuilding,
			Rounds: []Round{
				{ID: "unit-7-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"house", "дом", "хаус"},
					[3]string{"room", "комната", "рум"},
					[3]string{"kitchen", "кухня", "китчэн"},
					[3]string{"bedroom", "спальня", "бэдрум"},
					[3]string{"bathroom", "ванная", "басрум"},
				)},
				{ID: "unit-7-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"window", "окно", "уиндоу"},
					[3]string{"door", "дверь", "дор"},
					[3]string{"table", "стол", "тэйбл"},
					[3]string{"bed", "кровать", "бэд"},
					[3]string{"chair", "стул", "чэар (хаус)"},
				)},
			},
		},
		{
			ID:   "unit-8",
			Name: "Unit 8: Weather",
			Icon: IconCloud,
			Rounds: []Round{
				{ID: "unit-8-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"sunny", "солнечно", "сани"},
					[3]string{"rainy", "дождливо", "рэйни"},
					[3]string{"windy", "ветрено", "уинди"},
					[3]string{"cloudy", "облачно", "клауди"},
					[3]string{"snowy", "снежно", "сноуи"},
				)},
				{ID: "unit-8-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"hot", "жарко", "хот"},
					[3]string{"cold", "холодно", "колд"},
					[3]string{"warm", "тепло", "уорм"},
					[3]string{"cool", "прохладно", "кул"},
					[3]string{"stormy", "штормовой", "сторми"},
				)},
			},
		},
		{
			ID:   "unit-9",
			Name: "Unit 9: Days of the Week",
			Icon: IconCalendar,
			Rounds: []Round{
				{ID: "unit-9-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"Monday", "понедельник", "мандэй"},
					[3]string{"Tuesday", "вторник", "тьюздэй"},
					[3]string{"Wednesday", "среда", "уэнздэй"},
					[3]string{"Thursday", "четверг", "сёрздэй"},
					[3]string{"Friday", "пятница", "фрайдэй"},
				)},
				{ID: "unit-9-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"Saturday", "суббота", "сэтэрдэй"},
					[3]string{"Sunday", "воскресенье", "сандэй"},
					[3]string{"today", "сегодня", "тудэй"},
					[3]string{"tomorrow", "завтра", "тумороу"},
					[3]string{"yesterday", "вчера", "йестэдэй"},
				)},
			},
		},
		{
			ID:   "unit-10",
			Name: "Unit 10: Hobbies",
			Icon: IconGamepad,
			Rounds: []Round{
				{ID: "unit-10-round-1", Name: "Round 1", Words: wordRows(
					[3]string{"reading", "чтение", "ридинг"},
					[3]string{"playing", "игра", "плэинг"},
					[3]string{"drawing", "рисование", "дроинг"},
					[3]string{"swimming", "плавание", "суиминг"},
					[3]string{"singing", "пение", "сингинг"},
				)},
				{ID: "unit-10-round-2", Name: "Round 2", Words: wordRows(
					[3]string{"dancing", "танцы", "дэнсинг"},
					[3]string{"cooking", "готовка", "кукинг"},
					[3]string{"running", "бег", "ранинг"},
					[3]string{"traveling", "путешествия", "трэвэлинг"},
					[3]string{"watching TV", "просмотр ТВ", "уотчинг тиви"},
				)},
			},
		},
	})
}
